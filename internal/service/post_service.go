package service

import (
	"Orion/internal/api/dto"
	"Orion/internal/model"
	"Orion/internal/pkg/consts"
	"Orion/internal/pkg/redis"
	"Orion/internal/pkg/util"
	"Orion/internal/repository"
	"context"
	"fmt"
	"time"
)

type PostService interface {
	CreatePost(ctx context.Context, userID uint64, req *dto.CreatePostDTO) (*dto.PostDTO, error)
	GetPost(ctx context.Context, id uint64) (*dto.PostDTO, error)
	ListPosts(ctx context.Context, page, limit int) (*dto.PostListDTO, error)
	UpdatePost(ctx context.Context, userID, postID uint64, req *dto.UpdatePostDTO) error
	DeletePost(ctx context.Context, userID, postID uint64) error
	GetTrendingPosts(ctx context.Context, limit int) ([]*dto.PostDTO, error)
}

type postServiceImpl struct {
	postRepo    repository.PostRepo
	userRepo    repository.UserRepo
	broadcaster *broadcaster
}

func NewPostService(postRepo repository.PostRepo, userRepo repository.UserRepo, notifSvc NotificationService, delivery DeliveryService) PostService {
	return &postServiceImpl{
		postRepo:    postRepo,
		userRepo:    userRepo,
		broadcaster: &broadcaster{userRepo: userRepo, notifSvc: notifSvc, delivery: delivery},
	}
}

// CreatePost 发帖成功后在后台广播通知，HTTP 响应不等待广播
func (s *postServiceImpl) CreatePost(ctx context.Context, userID uint64, req *dto.CreatePostDTO) (*dto.PostDTO, error) {
	author, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrUserNotFound
	}

	post := &model.Post{
		UserID:    userID,
		Text:      req.Text,
		Images:    req.Images,
		Documents: req.Documents,
		Published: true,
	}
	if err = s.postRepo.CreatePost(ctx, post); err != nil {
		return nil, err
	}

	message := fmt.Sprintf("%s 分享了新动态", author.FullName)
	s.broadcaster.dispatch(userID, message, &dto.NotificationDTO{
		Message:   message,
		PostID:    &post.ID,
		CreatedAt: time.Now(),
		Post:      &dto.NotificationPostRefDTO{ID: post.ID, Text: post.Text},
	})

	post.User = *author
	return toPostDTO(post), nil
}

func (s *postServiceImpl) GetPost(ctx context.Context, id uint64) (*dto.PostDTO, error) {
	post, err := s.postRepo.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return toPostDTO(post), nil
}

func (s *postServiceImpl) ListPosts(ctx context.Context, page, limit int) (*dto.PostListDTO, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 20
	}

	posts, total, err := s.postRepo.ListPosts(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.PostDTO, 0, len(posts))
	for _, p := range posts {
		res = append(res, toPostDTO(p))
	}

	totalPages := total / int64(limit)
	if total%int64(limit) != 0 {
		totalPages++
	}

	return &dto.PostListDTO{
		Posts: res,
		Pagination: &dto.PaginationDTO{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}, nil
}

func (s *postServiceImpl) UpdatePost(ctx context.Context, userID, postID uint64, req *dto.UpdatePostDTO) error {
	post := &model.Post{
		ID:        postID,
		UserID:    userID,
		Text:      req.Text,
		Images:    req.Images,
		Documents: req.Documents,
		Published: true,
	}
	if req.Published != nil {
		post.Published = *req.Published
	}

	rows, err := s.postRepo.UpdatePost(ctx, post)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrPostNotFound
	}
	return nil
}

func (s *postServiceImpl) DeletePost(ctx context.Context, userID, postID uint64) error {
	rows, err := s.postRepo.DeletePost(ctx, postID, userID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrPostNotFound
	}
	return nil
}

// GetTrendingPosts 从 Redis 热度榜取 TopN 的帖子 ID，再回表取内容，保持榜单顺序
func (s *postServiceImpl) GetTrendingPosts(ctx context.Context, limit int) ([]*dto.PostDTO, error) {
	if limit < 1 || limit > 50 {
		limit = 10
	}

	members, err := redis.ZRevRange(ctx, consts.PostTrendingKey, 0, int64(limit-1))
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return []*dto.PostDTO{}, nil
	}

	ids, err := util.StrSliceToUInt64Slice(members)
	if err != nil {
		return nil, err
	}

	posts, err := s.postRepo.GetPostByIds(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uint64]*model.Post, len(posts))
	for _, p := range posts {
		byID[p.ID] = p
	}

	res := make([]*dto.PostDTO, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			res = append(res, toPostDTO(p))
		}
	}
	return res, nil
}

func toPostDTO(p *model.Post) *dto.PostDTO {
	d := &dto.PostDTO{
		ID:        p.ID,
		Text:      p.Text,
		Images:    p.Images,
		Documents: p.Documents,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		Author: &dto.AuthorDTO{
			ID:       p.User.ID,
			FullName: p.User.FullName,
			Role:     p.User.Role,
		},
		LikeCount:    len(p.Likes),
		LikedUserIds: make([]uint64, 0, len(p.Likes)),
	}
	for _, l := range p.Likes {
		d.LikedUserIds = append(d.LikedUserIds, l.UserID)
	}
	for _, c := range p.Comments {
		d.Comments = append(d.Comments, toCommentDTO(&c))
	}
	return d
}

func toCommentDTO(c *model.PostComment) *dto.CommentDTO {
	return &dto.CommentDTO{
		ID:        c.ID,
		PostID:    c.PostID,
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
		Author: &dto.AuthorDTO{
			ID:       c.User.ID,
			FullName: c.User.FullName,
			Role:     c.User.Role,
		},
	}
}
