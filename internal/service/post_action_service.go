package service

import (
	"Orion/internal/api/dto"
	"Orion/internal/model"
	"Orion/internal/repository"
	"context"
	"fmt"
	log "log/slog"
	"time"
)

type PostActionService interface {
	LikePost(ctx context.Context, userID, postID uint64) (bool, error)
	CreateComment(ctx context.Context, userID, postID uint64, req *dto.CreateCommentDTO) (*dto.CommentDTO, error)
	GetComments(ctx context.Context, postID uint64) ([]*dto.CommentDTO, error)
}

type postActionServiceImpl struct {
	actionRepo repository.PostActionRepo
	postRepo   repository.PostRepo
	userRepo   repository.UserRepo
	notifSvc   NotificationService
	delivery   DeliveryService
}

func NewPostActionService(actionRepo repository.PostActionRepo, postRepo repository.PostRepo, userRepo repository.UserRepo, notifSvc NotificationService, delivery DeliveryService) PostActionService {
	return &postActionServiceImpl{
		actionRepo: actionRepo,
		postRepo:   postRepo,
		userRepo:   userRepo,
		notifSvc:   notifSvc,
		delivery:   delivery,
	}
}

// LikePost 点赞开关。首次点赞别人的帖子时给帖主落一条通知并后台推送。
func (s *postActionServiceImpl) LikePost(ctx context.Context, userID, postID uint64) (bool, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return false, err
	}
	if post == nil {
		return false, ErrPostNotFound
	}

	created, err := s.actionRepo.AddLike(ctx, postID, userID)
	if err != nil {
		return false, err
	}
	if !created {
		// 已点过赞，取消
		if _, err = s.actionRepo.RemoveLike(ctx, postID, userID); err != nil {
			return false, err
		}
		return false, nil
	}

	if post.UserID != userID {
		s.dispatchOwnerNotice(userID, post.UserID, postID, "%s 赞了你的动态")
	}
	return true, nil
}

// CreateComment 评论别人的帖子时通知帖主
func (s *postActionServiceImpl) CreateComment(ctx context.Context, userID, postID uint64, req *dto.CreateCommentDTO) (*dto.CommentDTO, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	author, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrUserNotFound
	}

	comment := &model.PostComment{
		PostID: postID,
		UserID: userID,
		Text:   req.Text,
	}
	if err = s.actionRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	if post.UserID != userID {
		s.dispatchOwnerNotice(userID, post.UserID, postID, "%s 评论了你的动态")
	}

	comment.User = *author
	return toCommentDTO(comment), nil
}

func (s *postActionServiceImpl) GetComments(ctx context.Context, postID uint64) ([]*dto.CommentDTO, error) {
	comments, err := s.actionRepo.GetComments(ctx, postID)
	if err != nil {
		return nil, err
	}
	res := make([]*dto.CommentDTO, 0, len(comments))
	for _, c := range comments {
		res = append(res, toCommentDTO(c))
	}
	return res, nil
}

// dispatchOwnerNotice 后台任务：给帖主落通知并推送，失败只记日志
func (s *postActionServiceImpl) dispatchOwnerNotice(actorID, ownerID, postID uint64, format string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		actor, err := s.userRepo.GetUserById(ctx, actorID)
		if err != nil || actor == nil {
			log.Error("通知发起人查询失败", "actor_id", actorID, "err", err)
			return
		}

		n, err := s.notifSvc.Create(ctx, ownerID, fmt.Sprintf(format, actor.FullName), &postID, nil, nil)
		if err != nil {
			log.Error("创建通知失败", "owner_id", ownerID, "post_id", postID, "err", err)
			return
		}
		s.delivery.NotifyUser(ctx, ownerID, n)
	}()
}
