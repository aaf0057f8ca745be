package service

import (
	"Orion/internal/api/dto"
	"Orion/internal/model"
	"Orion/internal/repository"
	"context"
	"fmt"
	"time"
)

type SessionService interface {
	CreateSession(ctx context.Context, userID uint64, req *dto.CreateSessionDTO) (*dto.SessionDTO, error)
	GetSession(ctx context.Context, id uint64) (*dto.SessionDTO, error)
	ListSessions(ctx context.Context, page, limit int) (*dto.SessionListDTO, error)
}

type sessionServiceImpl struct {
	sessionRepo repository.SessionRepo
	userRepo    repository.UserRepo
	broadcaster *broadcaster
}

func NewSessionService(sessionRepo repository.SessionRepo, userRepo repository.UserRepo, notifSvc NotificationService, delivery DeliveryService) SessionService {
	return &sessionServiceImpl{
		sessionRepo: sessionRepo,
		userRepo:    userRepo,
		broadcaster: &broadcaster{userRepo: userRepo, notifSvc: notifSvc, delivery: delivery},
	}
}

// CreateSession 排期成功后后台广播，全站用户都该知道有新分享会
func (s *sessionServiceImpl) CreateSession(ctx context.Context, userID uint64, req *dto.CreateSessionDTO) (*dto.SessionDTO, error) {
	host, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if host == nil {
		return nil, ErrUserNotFound
	}

	session := &model.Session{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Link:        req.Link,
		ScheduledAt: req.ScheduledAt,
	}
	if err = s.sessionRepo.CreateSession(ctx, session); err != nil {
		return nil, err
	}

	message := fmt.Sprintf("%s 排期了新分享会：%s", host.FullName, session.Title)
	s.broadcaster.dispatch(userID, message, &dto.NotificationDTO{
		Message:   message,
		SessionID: &session.ID,
		CreatedAt: time.Now(),
		Session:   &dto.NotificationRefDTO{ID: session.ID, Title: session.Title, Type: session.Type},
	})

	session.User = *host
	return toSessionDTO(session), nil
}

func (s *sessionServiceImpl) GetSession(ctx context.Context, id uint64) (*dto.SessionDTO, error) {
	session, err := s.sessionRepo.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return toSessionDTO(session), nil
}

func (s *sessionServiceImpl) ListSessions(ctx context.Context, page, limit int) (*dto.SessionListDTO, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 20
	}

	sessions, total, err := s.sessionRepo.ListSessions(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.SessionDTO, 0, len(sessions))
	for _, m := range sessions {
		res = append(res, toSessionDTO(m))
	}

	totalPages := total / int64(limit)
	if total%int64(limit) != 0 {
		totalPages++
	}

	return &dto.SessionListDTO{
		Sessions: res,
		Pagination: &dto.PaginationDTO{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}, nil
}

func toSessionDTO(m *model.Session) *dto.SessionDTO {
	return &dto.SessionDTO{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Type:        m.Type,
		Link:        m.Link,
		ScheduledAt: m.ScheduledAt,
		CreatedAt:   m.CreatedAt,
		Host: &dto.AuthorDTO{
			ID:       m.User.ID,
			FullName: m.User.FullName,
			Role:     m.User.Role,
		},
	}
}
