package model

import (
	"time"
)

type PostComment struct {
	ID        uint64    `gorm:"primaryKey"`
	PostID    uint64    `gorm:"not null;index:idx_post_id" json:"post_id"`
	UserID    uint64    `gorm:"not null" json:"user_id"`
	Text      string    `gorm:"not null" json:"text"`
	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID;references:ID"`
	Post Post `gorm:"foreignKey:PostID;references:ID"`
}

func (PostComment) TableName() string {
	return "post_comments"
}
