package service

import (
	"Orion/internal/api/dto"
	"Orion/internal/realtime"
	"Orion/internal/repository"
	"context"
	log "log/slog"
)

// Pusher 实时投递端抽象（realtime.Registry 实现之），Push 对离线用户是 no-op
type Pusher interface {
	Push(userID uint64, payload []byte)
}

// DeliveryService 把落库的通知推到目标用户的在线连接上。
// 所有方法只记日志不返回错误：触发方（发帖/点赞等）已经成功，
// 推送失败不允许回滚或污染触发方的响应，客户端之后拉列表自会补齐。
type DeliveryService interface {
	NotifyUser(ctx context.Context, userID uint64, n *dto.NotificationDTO)
	NotifyUsers(ctx context.Context, userIDs []uint64, n *dto.NotificationDTO)
	BroadcastExceptUser(ctx context.Context, excludeUserID uint64, n *dto.NotificationDTO)
}

type deliveryServiceImpl struct {
	pusher    Pusher
	notifRepo repository.NotificationRepo
	userRepo  repository.UserRepo
}

func NewDeliveryService(pusher Pusher, notifRepo repository.NotificationRepo, userRepo repository.UserRepo) DeliveryService {
	return &deliveryServiceImpl{
		pusher:    pusher,
		notifRepo: notifRepo,
		userRepo:  userRepo,
	}
}

// NotifyUser 先推通知本体，再推最新未读数。两次推送顺序固定：
// 客户端可能只看到通知没看到计数，但不会反过来。
func (s *deliveryServiceImpl) NotifyUser(ctx context.Context, userID uint64, n *dto.NotificationDTO) {
	s.notifyOne(ctx, userID, n)
}

// NotifyUsers 逐个投递。每个用户有独立的失败边界：
// 一个用户的通道出错只记日志，绝不中断对其余用户的投递。
func (s *deliveryServiceImpl) NotifyUsers(ctx context.Context, userIDs []uint64, n *dto.NotificationDTO) {
	for _, uid := range userIDs {
		s.notifyOne(ctx, uid, n)
	}
}

// BroadcastExceptUser 解析广播范围（排除动作发起者的全部活跃用户）后逐个投递
func (s *deliveryServiceImpl) BroadcastExceptUser(ctx context.Context, excludeUserID uint64, n *dto.NotificationDTO) {
	ids, err := s.userRepo.GetActiveUserIds(ctx, excludeUserID)
	if err != nil {
		log.ErrorContext(ctx, "广播范围解析失败", "exclude_user_id", excludeUserID, "err", err)
		return
	}
	s.NotifyUsers(ctx, ids, n)
}

func (s *deliveryServiceImpl) notifyOne(ctx context.Context, userID uint64, n *dto.NotificationDTO) {
	defer func() {
		if r := recover(); r != nil {
			log.ErrorContext(ctx, "单用户投递异常", "user_id", userID, "panic", r)
		}
	}()

	payload, err := realtime.NewEvent(realtime.EventNewNotification, n)
	if err != nil {
		log.ErrorContext(ctx, "通知事件序列化失败", "user_id", userID, "err", err)
		return
	}
	s.pusher.Push(userID, payload)

	count, err := s.notifRepo.UnreadCount(ctx, userID)
	if err != nil {
		log.ErrorContext(ctx, "未读数查询失败", "user_id", userID, "err", err)
		return
	}
	countPayload, err := realtime.NewEvent(realtime.EventUnreadCount, &dto.UnreadCountDTO{Count: count})
	if err != nil {
		log.ErrorContext(ctx, "未读数事件序列化失败", "user_id", userID, "err", err)
		return
	}
	s.pusher.Push(userID, countPayload)
}
