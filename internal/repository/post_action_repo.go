package repository

import (
	"Orion/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostEngagement 热度聚合结果（定时任务用）
type PostEngagement struct {
	PostID uint64
	Likes  int64
	Cmts   int64
}

type PostActionRepo interface {
	AddLike(ctx context.Context, postID, userID uint64) (bool, error)
	RemoveLike(ctx context.Context, postID, userID uint64) (int64, error)
	CreateComment(ctx context.Context, comment *model.PostComment) error
	GetComments(ctx context.Context, postID uint64) ([]*model.PostComment, error)
	ListCommentsByUser(ctx context.Context, userID uint64) ([]*model.PostComment, error)
	ListLikesByUser(ctx context.Context, userID uint64) ([]*model.PostLike, error)
	GetEngagementSince(ctx context.Context, since time.Time) ([]*PostEngagement, error)
}

type PostActionRepoImpl struct {
	db *gorm.DB
}

func NewPostActionRepo(db *gorm.DB) PostActionRepo {
	return &PostActionRepoImpl{db: db}
}

// AddLike 依赖 (post_id, user_id) 唯一索引做幂等，返回是否产生了新的点赞
func (s *PostActionRepoImpl) AddLike(ctx context.Context, postID, userID uint64) (bool, error) {
	like := &model.PostLike{PostID: postID, UserID: userID}
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(like)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (s *PostActionRepoImpl) RemoveLike(ctx context.Context, postID, userID uint64) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&model.PostLike{})
	return result.RowsAffected, result.Error
}

func (s *PostActionRepoImpl) CreateComment(ctx context.Context, comment *model.PostComment) error {
	return s.db.WithContext(ctx).Create(comment).Error
}

func (s *PostActionRepoImpl) GetComments(ctx context.Context, postID uint64) ([]*model.PostComment, error) {
	comments := make([]*model.PostComment, 0)
	result := s.db.WithContext(ctx).
		Preload("User").
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments)
	if result.Error != nil {
		return nil, result.Error
	}
	return comments, nil
}

// ListCommentsByUser 某用户发过的全部评论（活动轨迹用），带所评帖子
func (s *PostActionRepoImpl) ListCommentsByUser(ctx context.Context, userID uint64) ([]*model.PostComment, error) {
	comments := make([]*model.PostComment, 0)
	result := s.db.WithContext(ctx).
		Preload("User").
		Preload("Post.User").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&comments)
	if result.Error != nil {
		return nil, result.Error
	}
	return comments, nil
}

// ListLikesByUser 某用户点过的全部赞（活动轨迹用），带所赞帖子
func (s *PostActionRepoImpl) ListLikesByUser(ctx context.Context, userID uint64) ([]*model.PostLike, error) {
	likes := make([]*model.PostLike, 0)
	result := s.db.WithContext(ctx).
		Preload("Post.User").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&likes)
	if result.Error != nil {
		return nil, result.Error
	}
	return likes, nil
}

// GetEngagementSince 统计 since 之后各帖子的点赞/评论数
func (s *PostActionRepoImpl) GetEngagementSince(ctx context.Context, since time.Time) ([]*PostEngagement, error) {
	res := make([]*PostEngagement, 0)

	rows := make([]*PostEngagement, 0)
	err := s.db.WithContext(ctx).
		Model(&model.PostLike{}).
		Select("post_id, COUNT(*) AS likes").
		Where("created_at >= ?", since).
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	byPost := make(map[uint64]*PostEngagement, len(rows))
	for _, r := range rows {
		byPost[r.PostID] = &PostEngagement{PostID: r.PostID, Likes: r.Likes}
	}

	rows = rows[:0]
	err = s.db.WithContext(ctx).
		Model(&model.PostComment{}).
		Select("post_id, COUNT(*) AS cmts").
		Where("created_at >= ?", since).
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		if e, ok := byPost[r.PostID]; ok {
			e.Cmts = r.Cmts
		} else {
			byPost[r.PostID] = &PostEngagement{PostID: r.PostID, Cmts: r.Cmts}
		}
	}

	for _, e := range byPost {
		res = append(res, e)
	}
	return res, nil
}
