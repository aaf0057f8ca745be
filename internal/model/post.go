package model

import (
	"time"
)

type Post struct {
	ID        uint64    `gorm:"primaryKey"`
	UserID    uint64    `gorm:"not null;index:idx_user_id" json:"user_id"`
	Text      string    `gorm:"not null" json:"text"`
	Images    []string  `gorm:"serializer:json" json:"images"`
	Documents []string  `gorm:"serializer:json" json:"documents"`
	Published bool      `gorm:"type:tinyint(1);not null;default:1" json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 关联关系
	User     User          `gorm:"foreignKey:UserID;references:ID"`
	Likes    []PostLike    `gorm:"foreignKey:PostID;references:ID"`
	Comments []PostComment `gorm:"foreignKey:PostID;references:ID"`
}

func (Post) TableName() string {
	return "posts"
}
