package model

import (
	"time"
)

// Need 创业需求帖（找联创、找实习、找资源等）
type Need struct {
	ID          uint64    `gorm:"primaryKey"`
	UserID      uint64    `gorm:"not null;index:idx_user_id" json:"user_id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `json:"description"`
	Type        string    `gorm:"type:varchar(50)" json:"type"` // cofounder / intern / resource
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

func (Need) TableName() string {
	return "needs"
}
