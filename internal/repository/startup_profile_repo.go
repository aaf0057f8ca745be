package repository

import (
	"Orion/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

// ExploreFilter explore 列表的筛选条件，空字段不参与过滤
type ExploreFilter struct {
	Industry     string
	FundingStage string
	Location     string
	Search       string
}

type StartupProfileRepo interface {
	GetByUserId(ctx context.Context, userID uint64) (*model.StartupProfile, error)
	Create(ctx context.Context, profile *model.StartupProfile) error
	Save(ctx context.Context, profile *model.StartupProfile) error
	Delete(ctx context.Context, profileID uint64) (int64, error)
	List(ctx context.Context, filter *ExploreFilter, page, limit int) ([]*model.StartupProfile, int64, error)
}

type StartupProfileRepoImpl struct {
	db *gorm.DB
}

func NewStartupProfileRepo(db *gorm.DB) StartupProfileRepo {
	return &StartupProfileRepoImpl{db: db}
}

func (s *StartupProfileRepoImpl) GetByUserId(ctx context.Context, userID uint64) (*model.StartupProfile, error) {
	profile := &model.StartupProfile{}
	result := s.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		First(profile)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return profile, nil
}

func (s *StartupProfileRepoImpl) Create(ctx context.Context, profile *model.StartupProfile) error {
	return s.db.WithContext(ctx).Create(profile).Error
}

// Save 回写分区列与完整度
func (s *StartupProfileRepoImpl) Save(ctx context.Context, profile *model.StartupProfile) error {
	return s.db.WithContext(ctx).
		Model(&model.StartupProfile{}).
		Where("id = ?", profile.ID).
		Select("personal_info", "business_details", "company_details", "offerings",
			"interests", "technology_interests", "partnership_interests", "innovation_focus",
			"completion_percentage", "is_complete").
		Updates(profile).Error
}

func (s *StartupProfileRepoImpl) Delete(ctx context.Context, profileID uint64) (int64, error) {
	result := s.db.WithContext(ctx).Delete(&model.StartupProfile{}, profileID)
	return result.RowsAffected, result.Error
}

// List 筛选字段藏在 JSON 分区列里，用 MySQL 的 ->> 路径表达式过滤
func (s *StartupProfileRepoImpl) List(ctx context.Context, filter *ExploreFilter, page, limit int) ([]*model.StartupProfile, int64, error) {
	query := s.db.WithContext(ctx).Model(&model.StartupProfile{})

	if filter != nil {
		if filter.Industry != "" {
			like := "%" + filter.Industry + "%"
			query = query.Where(
				"business_details->>'$.industry' LIKE ? OR company_details->>'$.industry' LIKE ?",
				like, like)
		}
		if filter.FundingStage != "" {
			query = query.Where("business_details->>'$.funding_stage' LIKE ?", "%"+filter.FundingStage+"%")
		}
		if filter.Location != "" {
			like := "%" + filter.Location + "%"
			query = query.Where(
				"personal_info->>'$.location' LIKE ? OR company_details->>'$.company_location' LIKE ?",
				like, like)
		}
		if filter.Search != "" {
			like := "%" + filter.Search + "%"
			query = query.Where(
				"company_details->>'$.company_name' LIKE ? OR company_details->>'$.company_description' LIKE ? OR company_details->>'$.industry' LIKE ?",
				like, like, like)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	profiles := make([]*model.StartupProfile, 0, limit)
	result := query.
		Preload("User").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&profiles)
	if result.Error != nil {
		return nil, 0, result.Error
	}
	return profiles, total, nil
}
