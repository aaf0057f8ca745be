package repository

import (
	"Orion/internal/model"
	"context"

	"gorm.io/gorm"
)

type ResourceRepo interface {
	ListCategories(ctx context.Context) ([]*model.ResourceCategory, error)
	CreateFile(ctx context.Context, file *model.ResourceFile) error
}

type ResourceRepoImpl struct {
	db *gorm.DB
}

func NewResourceRepo(db *gorm.DB) ResourceRepo {
	return &ResourceRepoImpl{db: db}
}

func (s *ResourceRepoImpl) ListCategories(ctx context.Context) ([]*model.ResourceCategory, error) {
	categories := make([]*model.ResourceCategory, 0)
	result := s.db.WithContext(ctx).
		Preload("Files").
		Find(&categories)
	if result.Error != nil {
		return nil, result.Error
	}
	return categories, nil
}

func (s *ResourceRepoImpl) CreateFile(ctx context.Context, file *model.ResourceFile) error {
	return s.db.WithContext(ctx).Create(file).Error
}
