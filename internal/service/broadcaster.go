package service

import (
	"Orion/internal/api/dto"
	"Orion/internal/repository"
	"context"
	log "log/slog"
	"time"
)

const broadcastTimeout = 10 * time.Second

// broadcaster 封装"全站广播"的后台流程：解析范围 -> 批量落库 -> 逐个推送。
// 触发方（发帖/排期/发需求）的请求已经成功返回，这里的任何失败都只记日志。
type broadcaster struct {
	userRepo repository.UserRepo
	notifSvc NotificationService
	delivery DeliveryService
}

// dispatch 异步执行广播，不阻塞调用方
func (b *broadcaster) dispatch(authorID uint64, message string, n *dto.NotificationDTO) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), broadcastTimeout)
		defer cancel()

		ids, err := b.userRepo.GetActiveUserIds(ctx, authorID)
		if err != nil {
			log.Error("广播范围解析失败", "author_id", authorID, "err", err)
			return
		}
		if len(ids) == 0 {
			return
		}

		if _, err = b.notifSvc.CreateBulk(ctx, ids, message, n.PostID, n.SessionID, n.NeedID); err != nil {
			log.Error("批量创建通知失败", "author_id", authorID, "err", err)
			return
		}

		b.delivery.NotifyUsers(ctx, ids, n)
	}()
}
