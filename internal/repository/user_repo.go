package repository

import (
	"Orion/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type UserRepo interface {
	GetUserById(ctx context.Context, id uint64) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByIds(ctx context.Context, ids []uint64) ([]*model.User, error)
	CreateUser(ctx context.Context, user *model.User) error
	GetActiveUserIds(ctx context.Context, excludeID uint64) ([]uint64, error)
}

type UserRepoImpl struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepo {
	return &UserRepoImpl{db: db}
}

func (s *UserRepoImpl) GetUserById(ctx context.Context, id uint64) (*model.User, error) {
	user := &model.User{}
	result := s.db.WithContext(ctx).First(user, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return user, nil
}

func (s *UserRepoImpl) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	user := &model.User{}
	result := s.db.WithContext(ctx).
		Where("email = ?", email).
		First(user)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return user, nil
}

func (s *UserRepoImpl) GetUserByIds(ctx context.Context, ids []uint64) ([]*model.User, error) {
	users := make([]*model.User, 0)
	result := s.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}

func (s *UserRepoImpl) CreateUser(ctx context.Context, user *model.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

// GetActiveUserIds 返回所有 is_active 用户的 ID，excludeID 非 0 时排除该用户（广播范围计算用）
func (s *UserRepoImpl) GetActiveUserIds(ctx context.Context, excludeID uint64) ([]uint64, error) {
	ids := make([]uint64, 0)
	query := s.db.WithContext(ctx).
		Model(&model.User{}).
		Where("is_active = ?", true)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	result := query.Pluck("id", &ids)
	if result.Error != nil {
		return nil, result.Error
	}
	return ids, nil
}
