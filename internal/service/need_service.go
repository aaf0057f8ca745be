package service

import (
	"Orion/internal/api/dto"
	"Orion/internal/model"
	"Orion/internal/repository"
	"context"
	"fmt"
	"time"
)

type NeedService interface {
	CreateNeed(ctx context.Context, userID uint64, req *dto.CreateNeedDTO) (*dto.NeedDTO, error)
	GetNeed(ctx context.Context, id uint64) (*dto.NeedDTO, error)
	ListNeeds(ctx context.Context, needType string, page, limit int) (*dto.NeedListDTO, error)
	UpdateNeed(ctx context.Context, userID, needID uint64, req *dto.UpdateNeedDTO) error
	DeleteNeed(ctx context.Context, userID, needID uint64) error
}

type needServiceImpl struct {
	needRepo    repository.NeedRepo
	userRepo    repository.UserRepo
	broadcaster *broadcaster
}

func NewNeedService(needRepo repository.NeedRepo, userRepo repository.UserRepo, notifSvc NotificationService, delivery DeliveryService) NeedService {
	return &needServiceImpl{
		needRepo:    needRepo,
		userRepo:    userRepo,
		broadcaster: &broadcaster{userRepo: userRepo, notifSvc: notifSvc, delivery: delivery},
	}
}

// CreateNeed 发布需求后后台广播
func (s *needServiceImpl) CreateNeed(ctx context.Context, userID uint64, req *dto.CreateNeedDTO) (*dto.NeedDTO, error) {
	author, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrUserNotFound
	}

	need := &model.Need{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
	}
	if err = s.needRepo.CreateNeed(ctx, need); err != nil {
		return nil, err
	}

	message := fmt.Sprintf("%s 发布了新需求：%s", author.FullName, need.Title)
	s.broadcaster.dispatch(userID, message, &dto.NotificationDTO{
		Message:   message,
		NeedID:    &need.ID,
		CreatedAt: time.Now(),
		Need:      &dto.NotificationRefDTO{ID: need.ID, Title: need.Title, Type: need.Type},
	})

	need.User = *author
	return toNeedDTO(need), nil
}

func (s *needServiceImpl) GetNeed(ctx context.Context, id uint64) (*dto.NeedDTO, error) {
	need, err := s.needRepo.GetNeed(ctx, id)
	if err != nil {
		return nil, err
	}
	if need == nil {
		return nil, ErrNeedNotFound
	}
	return toNeedDTO(need), nil
}

func (s *needServiceImpl) ListNeeds(ctx context.Context, needType string, page, limit int) (*dto.NeedListDTO, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 20
	}

	needs, total, err := s.needRepo.ListNeeds(ctx, needType, page, limit)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.NeedDTO, 0, len(needs))
	for _, m := range needs {
		res = append(res, toNeedDTO(m))
	}

	totalPages := total / int64(limit)
	if total%int64(limit) != 0 {
		totalPages++
	}

	return &dto.NeedListDTO{
		Needs: res,
		Pagination: &dto.PaginationDTO{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}, nil
}

func (s *needServiceImpl) UpdateNeed(ctx context.Context, userID, needID uint64, req *dto.UpdateNeedDTO) error {
	need := &model.Need{
		ID:          needID,
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
	}
	rows, err := s.needRepo.UpdateNeed(ctx, need)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNeedNotFound
	}
	return nil
}

func (s *needServiceImpl) DeleteNeed(ctx context.Context, userID, needID uint64) error {
	rows, err := s.needRepo.DeleteNeed(ctx, needID, userID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNeedNotFound
	}
	return nil
}

func toNeedDTO(m *model.Need) *dto.NeedDTO {
	return &dto.NeedDTO{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Type:        m.Type,
		CreatedAt:   m.CreatedAt,
		Author: &dto.AuthorDTO{
			ID:       m.User.ID,
			FullName: m.User.FullName,
			Role:     m.User.Role,
		},
	}
}
