package repository

import (
	"Orion/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post) error
	GetPost(ctx context.Context, id uint64) (*model.Post, error)
	GetPostByIds(ctx context.Context, ids []uint64) ([]*model.Post, error)
	ListPosts(ctx context.Context, page, limit int) ([]*model.Post, int64, error)
	ListPostsByUser(ctx context.Context, userID uint64) ([]*model.Post, error)
	UpdatePost(ctx context.Context, post *model.Post) (int64, error)
	DeletePost(ctx context.Context, id uint64, userID uint64) (int64, error)
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepo {
	return &PostRepoImpl{db: db}
}

func (s *PostRepoImpl) CreatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).Create(post).Error
}

func (s *PostRepoImpl) GetPost(ctx context.Context, id uint64) (*model.Post, error) {
	post := &model.Post{}
	result := s.db.WithContext(ctx).
		Preload("User").
		Preload("Likes").
		Preload("Comments.User").
		First(post, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return post, nil
}

func (s *PostRepoImpl) GetPostByIds(ctx context.Context, ids []uint64) ([]*model.Post, error) {
	posts := make([]*model.Post, 0, len(ids))
	result := s.db.WithContext(ctx).
		Preload("User").
		Preload("Likes").
		Where("id IN ?", ids).
		Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

// ListPosts 全站信息流，按创建时间倒序
func (s *PostRepoImpl) ListPosts(ctx context.Context, page, limit int) ([]*model.Post, int64, error) {
	query := s.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("published = ?", true)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	posts := make([]*model.Post, 0, limit)
	result := query.
		Preload("User").
		Preload("Likes").
		Preload("Comments.User").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&posts)
	if result.Error != nil {
		return nil, 0, result.Error
	}
	return posts, total, nil
}

// ListPostsByUser 某用户的全部帖子（活动轨迹用），不分页
func (s *PostRepoImpl) ListPostsByUser(ctx context.Context, userID uint64) ([]*model.Post, error) {
	posts := make([]*model.Post, 0)
	result := s.db.WithContext(ctx).
		Preload("User").
		Preload("Likes").
		Preload("Comments.User").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

// UpdatePost 带属主条件更新，返回受影响行数
func (s *PostRepoImpl) UpdatePost(ctx context.Context, post *model.Post) (int64, error) {
	result := s.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("id = ? AND user_id = ?", post.ID, post.UserID).
		Select("text", "images", "documents", "published").
		Updates(post)
	return result.RowsAffected, result.Error
}

func (s *PostRepoImpl) DeletePost(ctx context.Context, id uint64, userID uint64) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Post{})
	return result.RowsAffected, result.Error
}
