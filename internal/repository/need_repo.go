package repository

import (
	"Orion/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type NeedRepo interface {
	CreateNeed(ctx context.Context, need *model.Need) error
	GetNeed(ctx context.Context, id uint64) (*model.Need, error)
	ListNeeds(ctx context.Context, needType string, page, limit int) ([]*model.Need, int64, error)
	ListNeedsByUser(ctx context.Context, userID uint64) ([]*model.Need, error)
	UpdateNeed(ctx context.Context, need *model.Need) (int64, error)
	DeleteNeed(ctx context.Context, id uint64, userID uint64) (int64, error)
}

type NeedRepoImpl struct {
	db *gorm.DB
}

func NewNeedRepo(db *gorm.DB) NeedRepo {
	return &NeedRepoImpl{db: db}
}

func (s *NeedRepoImpl) CreateNeed(ctx context.Context, need *model.Need) error {
	return s.db.WithContext(ctx).Create(need).Error
}

func (s *NeedRepoImpl) GetNeed(ctx context.Context, id uint64) (*model.Need, error) {
	need := &model.Need{}
	result := s.db.WithContext(ctx).
		Preload("User").
		First(need, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return need, nil
}

func (s *NeedRepoImpl) ListNeeds(ctx context.Context, needType string, page, limit int) ([]*model.Need, int64, error) {
	query := s.db.WithContext(ctx).Model(&model.Need{})
	if needType != "" {
		query = query.Where("type = ?", needType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	needs := make([]*model.Need, 0, limit)
	result := query.
		Preload("User").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&needs)
	if result.Error != nil {
		return nil, 0, result.Error
	}
	return needs, total, nil
}

func (s *NeedRepoImpl) ListNeedsByUser(ctx context.Context, userID uint64) ([]*model.Need, error) {
	needs := make([]*model.Need, 0)
	result := s.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&needs)
	if result.Error != nil {
		return nil, result.Error
	}
	return needs, nil
}

func (s *NeedRepoImpl) UpdateNeed(ctx context.Context, need *model.Need) (int64, error) {
	result := s.db.WithContext(ctx).
		Model(&model.Need{}).
		Where("id = ? AND user_id = ?", need.ID, need.UserID).
		Select("title", "description", "type").
		Updates(need)
	return result.RowsAffected, result.Error
}

func (s *NeedRepoImpl) DeleteNeed(ctx context.Context, id uint64, userID uint64) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Need{})
	return result.RowsAffected, result.Error
}
