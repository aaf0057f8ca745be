package service

import (
	"Orion/internal/api/dto"
	"Orion/internal/repository"
	"context"
	"sort"
)

// 活动类型
const (
	ActivityPost    = "POST"
	ActivityComment = "COMMENT"
	ActivityLike    = "LIKE"
	ActivitySession = "SESSION"
	ActivityNeed    = "NEED"
)

// UserActivityService 个人活动轨迹：把发帖/评论/点赞/排期/发需求
// 合成一条按时间倒序的流。
type UserActivityService interface {
	GetUserActivities(ctx context.Context, userID uint64) (*dto.ActivityListDTO, error)
}

type userActivityServiceImpl struct {
	postRepo       repository.PostRepo
	postActionRepo repository.PostActionRepo
	sessionRepo    repository.SessionRepo
	needRepo       repository.NeedRepo
}

func NewUserActivityService(
	postRepo repository.PostRepo,
	postActionRepo repository.PostActionRepo,
	sessionRepo repository.SessionRepo,
	needRepo repository.NeedRepo,
) UserActivityService {
	return &userActivityServiceImpl{
		postRepo:       postRepo,
		postActionRepo: postActionRepo,
		sessionRepo:    sessionRepo,
		needRepo:       needRepo,
	}
}

func (s *userActivityServiceImpl) GetUserActivities(ctx context.Context, userID uint64) (*dto.ActivityListDTO, error) {
	posts, err := s.postRepo.ListPostsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	comments, err := s.postActionRepo.ListCommentsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	likes, err := s.postActionRepo.ListLikesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	sessions, err := s.sessionRepo.ListSessionsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	needs, err := s.needRepo.ListNeedsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	activities := make([]*dto.ActivityDTO, 0, len(posts)+len(comments)+len(likes)+len(sessions)+len(needs))
	for _, p := range posts {
		activities = append(activities, &dto.ActivityDTO{
			Type:      ActivityPost,
			CreatedAt: p.CreatedAt,
			Post:      toPostDTO(p),
		})
	}
	for _, c := range comments {
		activities = append(activities, &dto.ActivityDTO{
			Type:      ActivityComment,
			CreatedAt: c.CreatedAt,
			Comment:   toCommentDTO(c),
		})
	}
	for _, l := range likes {
		activities = append(activities, &dto.ActivityDTO{
			Type:      ActivityLike,
			CreatedAt: l.CreatedAt,
			Post:      toPostDTO(&l.Post),
		})
	}
	for _, m := range sessions {
		activities = append(activities, &dto.ActivityDTO{
			Type:      ActivitySession,
			CreatedAt: m.CreatedAt,
			Session:   toSessionDTO(m),
		})
	}
	for _, n := range needs {
		activities = append(activities, &dto.ActivityDTO{
			Type:      ActivityNeed,
			CreatedAt: n.CreatedAt,
			Need:      toNeedDTO(n),
		})
	}

	sort.Slice(activities, func(i, j int) bool {
		return activities[i].CreatedAt.After(activities[j].CreatedAt)
	})

	return &dto.ActivityListDTO{Activities: activities}, nil
}
