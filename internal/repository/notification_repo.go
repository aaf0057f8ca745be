package repository

import (
	"Orion/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NotificationRepo interface {
	Create(ctx context.Context, n *model.Notification) (*model.Notification, error)
	CreateBulk(ctx context.Context, list []*model.Notification) (int64, error)
	ListForUser(ctx context.Context, userID uint64, page, limit int, unreadOnly bool) ([]*model.Notification, int64, error)
	UnreadCount(ctx context.Context, userID uint64) (int64, error)
	MarkRead(ctx context.Context, ids []uint64, userID uint64) (int64, error)
	MarkAllRead(ctx context.Context, userID uint64) (int64, error)
	Delete(ctx context.Context, id uint64, userID uint64) (int64, error)
}

type NotificationRepoImpl struct {
	db *gorm.DB
}

func NewNotificationRepo(db *gorm.DB) NotificationRepo {
	return &NotificationRepoImpl{db: db}
}

// Create 插入单条通知并带出关联对象的展示字段
func (s *NotificationRepoImpl) Create(ctx context.Context, n *model.Notification) (*model.Notification, error) {
	if err := s.db.WithContext(ctx).Create(n).Error; err != nil {
		return nil, err
	}

	created := &model.Notification{}
	result := s.db.WithContext(ctx).
		Preload("Post", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "user_id", "text")
		}).
		Preload("Session", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "user_id", "title", "type")
		}).
		Preload("Need", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "user_id", "title", "type")
		}).
		First(created, n.ID)
	if result.Error != nil {
		return nil, result.Error
	}
	return created, nil
}

// CreateBulk 批量插入，命中去重唯一索引的行静默跳过（INSERT IGNORE 语义），返回实际插入行数。
// 广播重试时依赖该行为保证存储幂等。
func (s *NotificationRepoImpl) CreateBulk(ctx context.Context, list []*model.Notification) (int64, error) {
	if len(list) == 0 {
		return 0, nil
	}
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&list)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// ListForUser 按创建时间倒序分页，unreadOnly 在分页前过滤
func (s *NotificationRepoImpl) ListForUser(ctx context.Context, userID uint64, page, limit int, unreadOnly bool) ([]*model.Notification, int64, error) {
	query := s.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("user_id = ?", userID)
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	list := make([]*model.Notification, 0, limit)
	result := query.
		Preload("Post", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "user_id", "text")
		}).
		Preload("Session", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "user_id", "title", "type")
		}).
		Preload("Need", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "user_id", "title", "type")
		}).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list)
	if result.Error != nil {
		return nil, 0, result.Error
	}
	return list, total, nil
}

// UnreadCount 未读数，走 (user_id, is_read) 索引
func (s *NotificationRepoImpl) UnreadCount(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count)
	return count, result.Error
}

// MarkRead 仅更新属于 userID 的记录，其他用户的 ID 与不存在的 ID 均为 no-op
func (s *NotificationRepoImpl) MarkRead(ctx context.Context, ids []uint64, userID uint64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := s.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("id IN ? AND user_id = ?", ids, userID).
		Update("is_read", true)
	return result.RowsAffected, result.Error
}

func (s *NotificationRepoImpl) MarkAllRead(ctx context.Context, userID uint64) (int64, error) {
	result := s.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true)
	return result.RowsAffected, result.Error
}

// Delete 带属主条件删除，返回 0 表示不存在或不属于调用者
func (s *NotificationRepoImpl) Delete(ctx context.Context, id uint64, userID uint64) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Notification{})
	return result.RowsAffected, result.Error
}
