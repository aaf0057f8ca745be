package model

import (
	"time"
)

// Session 平台直播/分享会
type Session struct {
	ID          uint64    `gorm:"primaryKey"`
	UserID      uint64    `gorm:"not null;index:idx_user_id" json:"user_id"` // 主持人
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `json:"description"`
	Type        string    `gorm:"type:varchar(50)" json:"type"` // workshop / ama / pitch
	Link        string    `gorm:"type:varchar(512)" json:"link"`
	ScheduledAt time.Time `json:"scheduled_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

func (Session) TableName() string {
	return "sessions"
}
