package service

import (
	"Orion/internal/api/dto"
	"Orion/internal/model"
	"Orion/internal/repository"
	"context"

	"github.com/jinzhu/copier"
)

// NotificationService 通知存储层之上的业务封装。
// 只负责持久化与查询，投递（实时推送）由 DeliveryService 承担。
type NotificationService interface {
	Create(ctx context.Context, userID uint64, message string, postID, sessionID, needID *uint64) (*dto.NotificationDTO, error)
	CreateBulk(ctx context.Context, userIDs []uint64, message string, postID, sessionID, needID *uint64) (int64, error)
	List(ctx context.Context, userID uint64, page, limit int, unreadOnly bool) (*dto.NotificationListDTO, error)
	UnreadCount(ctx context.Context, userID uint64) (*dto.UnreadCountDTO, error)
	MarkRead(ctx context.Context, userID uint64, ids []uint64) (int64, error)
	MarkAllRead(ctx context.Context, userID uint64) (int64, error)
	Delete(ctx context.Context, userID uint64, id uint64) error
}

type notificationServiceImpl struct {
	notifRepo repository.NotificationRepo
}

func NewNotificationService(notifRepo repository.NotificationRepo) NotificationService {
	return &notificationServiceImpl{notifRepo: notifRepo}
}

// Create 为单个用户落一条通知，返回带关联展示字段的 DTO
func (s *notificationServiceImpl) Create(ctx context.Context, userID uint64, message string, postID, sessionID, needID *uint64) (*dto.NotificationDTO, error) {
	n := &model.Notification{
		UserID:    userID,
		Message:   message,
		PostID:    postID,
		SessionID: sessionID,
		NeedID:    needID,
	}
	created, err := s.notifRepo.Create(ctx, n)
	if err != nil {
		return nil, err
	}
	return ToNotificationDTO(created), nil
}

// CreateBulk 为一批用户各落一条相同内容的通知，一次 INSERT 完成。
// 重复提交同一批逻辑通知不报错，重复行被静默跳过（应对广播重试的双写）。
func (s *notificationServiceImpl) CreateBulk(ctx context.Context, userIDs []uint64, message string, postID, sessionID, needID *uint64) (int64, error) {
	if len(userIDs) == 0 {
		return 0, nil
	}
	list := make([]*model.Notification, 0, len(userIDs))
	for _, uid := range userIDs {
		list = append(list, &model.Notification{
			UserID:    uid,
			Message:   message,
			PostID:    postID,
			SessionID: sessionID,
			NeedID:    needID,
		})
	}
	return s.notifRepo.CreateBulk(ctx, list)
}

// List 通知分页，最新在前
func (s *notificationServiceImpl) List(ctx context.Context, userID uint64, page, limit int, unreadOnly bool) (*dto.NotificationListDTO, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	list, total, err := s.notifRepo.ListForUser(ctx, userID, page, limit, unreadOnly)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.NotificationDTO, 0, len(list))
	for _, m := range list {
		res = append(res, ToNotificationDTO(m))
	}

	totalPages := total / int64(limit)
	if total%int64(limit) != 0 {
		totalPages++
	}

	return &dto.NotificationListDTO{
		Notifications: res,
		Pagination: &dto.PaginationDTO{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}, nil
}

func (s *notificationServiceImpl) UnreadCount(ctx context.Context, userID uint64) (*dto.UnreadCountDTO, error) {
	count, err := s.notifRepo.UnreadCount(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.UnreadCountDTO{Count: count}, nil
}

// MarkRead 属主校验在存储层的 WHERE 条件里完成，别人的通知与不存在的 ID 都是 no-op
func (s *notificationServiceImpl) MarkRead(ctx context.Context, userID uint64, ids []uint64) (int64, error) {
	return s.notifRepo.MarkRead(ctx, ids, userID)
}

func (s *notificationServiceImpl) MarkAllRead(ctx context.Context, userID uint64) (int64, error) {
	return s.notifRepo.MarkAllRead(ctx, userID)
}

// Delete 0 行受影响统一映射为"通知不存在"，不暴露他人通知是否存在
func (s *notificationServiceImpl) Delete(ctx context.Context, userID uint64, id uint64) error {
	rows, err := s.notifRepo.Delete(ctx, id, userID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

// ToNotificationDTO 模型转展示 DTO，关联对象只保留展示字段
func ToNotificationDTO(m *model.Notification) *dto.NotificationDTO {
	d := &dto.NotificationDTO{}
	_ = copier.Copy(d, m)

	d.Post, d.Session, d.Need = nil, nil, nil
	if m.Post != nil {
		d.Post = &dto.NotificationPostRefDTO{ID: m.Post.ID, Text: m.Post.Text}
	}
	if m.Session != nil {
		d.Session = &dto.NotificationRefDTO{ID: m.Session.ID, Title: m.Session.Title, Type: m.Session.Type}
	}
	if m.Need != nil {
		d.Need = &dto.NotificationRefDTO{ID: m.Need.ID, Title: m.Need.Title, Type: m.Need.Type}
	}
	return d
}
