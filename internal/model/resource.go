package model

import (
	"time"
)

// ResourceCategory 融资资源分类（Pitch Deck 模板、财务模型等）
type ResourceCategory struct {
	ID        uint64 `gorm:"primaryKey" json:"id"`
	Title     string `gorm:"type:varchar(255);not null" json:"title"`
	CreatedAt time.Time

	Files []ResourceFile `gorm:"foreignKey:CategoryID;references:ID" json:"files"`
}

func (ResourceCategory) TableName() string {
	return "resource_categories"
}

type ResourceFile struct {
	ID         uint64 `gorm:"primaryKey" json:"id"`
	CategoryID uint64 `gorm:"not null;index:idx_category_id" json:"category_id"`
	Title      string `gorm:"type:varchar(255);not null" json:"title"`
	FileName   string `gorm:"type:varchar(255);not null" json:"file_name"`
	URL        string `gorm:"type:varchar(512);not null" json:"url"`
	CreatedAt  time.Time
}

func (ResourceFile) TableName() string {
	return "resource_files"
}
