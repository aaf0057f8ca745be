package model

import (
	"time"
)

type PostLike struct {
	ID        uint64 `gorm:"primaryKey"`
	PostID    uint64 `gorm:"not null;uniqueIndex:idx_post_user"`
	UserID    uint64 `gorm:"not null;uniqueIndex:idx_post_user;index:idx_user_id"`
	CreatedAt time.Time

	Post Post `gorm:"foreignKey:PostID;references:ID"`
}

func (PostLike) TableName() string {
	return "post_likes"
}
