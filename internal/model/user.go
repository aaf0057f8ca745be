package model

import (
	"time"
)

type User struct {
	ID        uint64 `gorm:"primaryKey"`
	FullName  string `gorm:"type:varchar(100);not null" json:"full_name"`
	Email     string `gorm:"type:varchar(100);uniqueIndex:idx_email;not null" json:"email"`
	Password  string `gorm:"type:varchar(255);not null" json:"-"`
	Role      string `gorm:"type:varchar(20);not null;default:student" json:"role"` // student / startup
	IsActive  bool   `gorm:"type:tinyint(1);not null;default:1" json:"is_active"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string {
	return "users"
}
