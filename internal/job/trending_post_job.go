package job

import (
	"Orion/internal/pkg/consts"
	"Orion/internal/pkg/logger"
	"Orion/internal/pkg/redis"
	"Orion/internal/repository"
	"context"
	log "log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// 热度打分权重：评论比点赞更能说明帖子有讨论度
const (
	likeWeight    = 1.0
	commentWeight = 2.0
	trendingSpan  = 7 * 24 * time.Hour
)

// TrendingPostJob 定时重算热帖榜。
// 先在暂存键上累加好全部分数，再 RENAME 原子切换，读榜请求不会看到半成品。
type TrendingPostJob struct {
	actionRepo repository.PostActionRepo
}

func NewTrendingPostJob(actionRepo repository.PostActionRepo) *TrendingPostJob {
	return &TrendingPostJob{
		actionRepo: actionRepo,
	}
}

func (s *TrendingPostJob) Run() {
	traceID := "job-trending-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	since := time.Now().Add(-trendingSpan)
	engagements, err := s.actionRepo.GetEngagementSince(ctx, since)
	if err != nil {
		log.ErrorContext(ctx, "fetch post engagement error", "err", err)
		return
	}

	if err = redis.DeleteKey(ctx, consts.PostTrendingStagingKey); err != nil {
		log.ErrorContext(ctx, "clear trending staging key error", "err", err)
		return
	}

	if len(engagements) == 0 {
		// 近期无互动，清空榜单
		if err = redis.DeleteKey(ctx, consts.PostTrendingKey); err != nil {
			log.ErrorContext(ctx, "clear trending key error", "err", err)
		}
		return
	}

	for _, e := range engagements {
		score := float64(e.Likes)*likeWeight + float64(e.Cmts)*commentWeight
		member := strconv.FormatUint(e.PostID, 10)
		if err = redis.ZIncrBy(ctx, consts.PostTrendingStagingKey, score, member); err != nil {
			log.ErrorContext(ctx, "stage trending score error", "post_id", e.PostID, "err", err)
			return
		}
	}

	// 只保留前 100 名
	if err = redis.ZRemRangeByRank(ctx, consts.PostTrendingStagingKey, 0, -101); err != nil {
		log.ErrorContext(ctx, "trim trending staging error", "err", err)
		return
	}

	if err = redis.Rename(ctx, consts.PostTrendingStagingKey, consts.PostTrendingKey); err != nil {
		log.ErrorContext(ctx, "swap trending key error", "err", err)
		return
	}

	log.InfoContext(ctx, "TrendingPostJob finished", "post_count", len(engagements))
}
