package service

import (
	"Orion/internal/api/dto"
	"Orion/internal/realtime"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// signalPusher 在收满预期帧数后发信号，让测试能等到后台广播结束
type signalPusher struct {
	*fakePusher
	remaining int32
	done      chan struct{}
}

func newSignalPusher(expected int32) *signalPusher {
	return &signalPusher{
		fakePusher: newFakePusher(),
		remaining:  expected,
		done:       make(chan struct{}),
	}
}

func (s *signalPusher) Push(userID uint64, payload []byte) {
	s.fakePusher.Push(userID, payload)
	if atomic.AddInt32(&s.remaining, -1) == 0 {
		close(s.done)
	}
}

func (s *signalPusher) wait(t *testing.T) {
	t.Helper()
	select {
	case <-s.done:
	case <-time.After(2 * time.Second):
		t.Fatal("广播超时未完成")
	}
}

func newTestBroadcaster(pusher Pusher, notifRepo *fakeNotifRepo, userRepo *fakeUserRepo) *broadcaster {
	return &broadcaster{
		userRepo: userRepo,
		notifSvc: NewNotificationService(notifRepo),
		delivery: NewDeliveryService(pusher, notifRepo, userRepo),
	}
}

// 发帖广播：作者之外每个活跃用户恰好落一条引用该帖的记录，且各收到一次推送
func TestDispatchStoresAndPushesPerUser(t *testing.T) {
	notifRepo := &fakeNotifRepo{}
	userRepo := newFakeUserRepo(activeUser(1), activeUser(2), activeUser(3))
	// 2 个目标用户，各 2 帧（通知本体 + 未读数）
	pusher := newSignalPusher(4)
	b := newTestBroadcaster(pusher, notifRepo, userRepo)

	postID := uint64(77)
	b.dispatch(1, "用户 分享了新动态", &dto.NotificationDTO{
		Message: "用户 分享了新动态",
		PostID:  &postID,
	})
	pusher.wait(t)

	notifRepo.mu.Lock()
	require.Len(t, notifRepo.rows, 2)
	stored := make(map[uint64]bool)
	for _, r := range notifRepo.rows {
		require.NotNil(t, r.PostID)
		assert.Equal(t, postID, *r.PostID)
		stored[r.UserID] = true
	}
	notifRepo.mu.Unlock()
	assert.False(t, stored[1])
	assert.True(t, stored[2])
	assert.True(t, stored[3])

	for _, uid := range []uint64{2, 3} {
		events := pusher.eventsFor(t, uid)
		require.Len(t, events, 2)
		assert.Equal(t, realtime.EventNewNotification, events[0].Type)
		assert.Equal(t, realtime.EventUnreadCount, events[1].Type)
	}
	assert.Empty(t, pusher.eventsFor(t, 1))
}

// 同一条广播重放：落库被去重索引拦下，不产生新记录
func TestDispatchReplaySkipsDuplicates(t *testing.T) {
	notifRepo := &fakeNotifRepo{}
	userRepo := newFakeUserRepo(activeUser(1), activeUser(2))
	postID := uint64(5)
	n := &dto.NotificationDTO{Message: "用户 分享了新动态", PostID: &postID}

	first := newSignalPusher(2)
	newTestBroadcaster(first, notifRepo, userRepo).dispatch(1, n.Message, n)
	first.wait(t)

	second := newSignalPusher(2)
	newTestBroadcaster(second, notifRepo, userRepo).dispatch(1, n.Message, n)
	second.wait(t)

	notifRepo.mu.Lock()
	defer notifRepo.mu.Unlock()
	assert.Len(t, notifRepo.rows, 1)
}

// 单个用户的通道异常只影响自己：记录照常落库，其余用户照常收到推送
func TestDispatchDeliveryFailureIsIsolated(t *testing.T) {
	notifRepo := &fakeNotifRepo{}
	userRepo := newFakeUserRepo(activeUser(1), activeUser(2), activeUser(3))
	// 用户 2 的第一帧就 panic，完成的推送只有用户 3 的 2 帧
	pusher := newSignalPusher(2)
	pusher.fakePusher.panicFor = 2
	b := newTestBroadcaster(pusher, notifRepo, userRepo)

	b.dispatch(1, "广播", &dto.NotificationDTO{Message: "广播"})
	pusher.wait(t)

	notifRepo.mu.Lock()
	assert.Len(t, notifRepo.rows, 2)
	notifRepo.mu.Unlock()

	assert.Empty(t, pusher.eventsFor(t, 2))
	assert.Len(t, pusher.eventsFor(t, 3), 2)
}
