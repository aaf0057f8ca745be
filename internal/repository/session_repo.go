package repository

import (
	"Orion/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type SessionRepo interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, id uint64) (*model.Session, error)
	ListSessions(ctx context.Context, page, limit int) ([]*model.Session, int64, error)
	ListSessionsByUser(ctx context.Context, userID uint64) ([]*model.Session, error)
}

type SessionRepoImpl struct {
	db *gorm.DB
}

func NewSessionRepo(db *gorm.DB) SessionRepo {
	return &SessionRepoImpl{db: db}
}

func (s *SessionRepoImpl) CreateSession(ctx context.Context, session *model.Session) error {
	return s.db.WithContext(ctx).Create(session).Error
}

func (s *SessionRepoImpl) GetSession(ctx context.Context, id uint64) (*model.Session, error) {
	session := &model.Session{}
	result := s.db.WithContext(ctx).
		Preload("User").
		First(session, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return session, nil
}

// ListSessions 按开始时间升序（最近要开始的排前面）
func (s *SessionRepoImpl) ListSessions(ctx context.Context, page, limit int) ([]*model.Session, int64, error) {
	query := s.db.WithContext(ctx).Model(&model.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sessions := make([]*model.Session, 0, limit)
	result := query.
		Preload("User").
		Order("scheduled_at ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&sessions)
	if result.Error != nil {
		return nil, 0, result.Error
	}
	return sessions, total, nil
}

func (s *SessionRepoImpl) ListSessionsByUser(ctx context.Context, userID uint64) ([]*model.Session, error) {
	sessions := make([]*model.Session, 0)
	result := s.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&sessions)
	if result.Error != nil {
		return nil, result.Error
	}
	return sessions, nil
}
