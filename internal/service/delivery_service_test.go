package service

import (
	"Orion/internal/api/dto"
	"Orion/internal/model"
	"Orion/internal/realtime"
	"context"
	"sync"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePusher struct {
	mu     sync.Mutex
	pushes map[uint64][][]byte
	// panicFor 命中该用户时 Push 直接 panic，用来验证失败边界
	panicFor uint64
}

func newFakePusher() *fakePusher {
	return &fakePusher{pushes: make(map[uint64][][]byte)}
}

func (s *fakePusher) Push(userID uint64, payload []byte) {
	if s.panicFor != 0 && userID == s.panicFor {
		panic("broken pipe")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pushes[userID] = append(s.pushes[userID], payload)
}

func (s *fakePusher) eventsFor(t *testing.T, userID uint64) []*realtime.Event {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	events := make([]*realtime.Event, 0, len(s.pushes[userID]))
	for _, p := range s.pushes[userID] {
		e, err := realtime.DecodeEvent(p)
		require.NoError(t, err)
		events = append(events, e)
	}
	return events
}

type fakeNotifRepo struct {
	mu     sync.Mutex
	nextID uint64
	rows   []*model.Notification
}

func (s *fakeNotifRepo) Create(_ context.Context, n *model.Notification) (*model.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	n.ID = s.nextID
	s.rows = append(s.rows, n)
	return n, nil
}

func (s *fakeNotifRepo) CreateBulk(_ context.Context, list []*model.Notification) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	inserted := int64(0)
	for _, n := range list {
		if s.exists(n) {
			continue
		}
		s.nextID++
		n.ID = s.nextID
		s.rows = append(s.rows, n)
		inserted++
	}
	return inserted, nil
}

// exists 模拟 (user_id, message, post_id, session_id, need_id) 去重索引
func (s *fakeNotifRepo) exists(n *model.Notification) bool {
	for _, r := range s.rows {
		if r.UserID == n.UserID && r.Message == n.Message &&
			ptrEq(r.PostID, n.PostID) && ptrEq(r.SessionID, n.SessionID) && ptrEq(r.NeedID, n.NeedID) {
			return true
		}
	}
	return false
}

func ptrEq(a, b *uint64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func (s *fakeNotifRepo) ListForUser(_ context.Context, userID uint64, page, limit int, unreadOnly bool) ([]*model.Notification, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	matched := make([]*model.Notification, 0)
	for i := len(s.rows) - 1; i >= 0; i-- {
		r := s.rows[i]
		if r.UserID != userID {
			continue
		}
		if unreadOnly && r.IsRead {
			continue
		}
		matched = append(matched, r)
	}
	total := int64(len(matched))
	start := (page - 1) * limit
	if start >= len(matched) {
		return []*model.Notification{}, total, nil
	}
	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (s *fakeNotifRepo) UnreadCount(_ context.Context, userID uint64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int64
	for _, r := range s.rows {
		if r.UserID == userID && !r.IsRead {
			count++
		}
	}
	return count, nil
}

func (s *fakeNotifRepo) MarkRead(_ context.Context, ids []uint64, userID uint64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idSet := make(map[uint64]struct{}, len(ids))
	for _, id := range ids {
		idSet[id] = struct{}{}
	}
	var updated int64
	for _, r := range s.rows {
		if _, ok := idSet[r.ID]; ok && r.UserID == userID && !r.IsRead {
			r.IsRead = true
			updated++
		}
	}
	return updated, nil
}

func (s *fakeNotifRepo) MarkAllRead(_ context.Context, userID uint64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var updated int64
	for _, r := range s.rows {
		if r.UserID == userID && !r.IsRead {
			r.IsRead = true
			updated++
		}
	}
	return updated, nil
}

func (s *fakeNotifRepo) Delete(_ context.Context, id uint64, userID uint64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.rows {
		if r.ID == id && r.UserID == userID {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type fakeUserRepo struct {
	users map[uint64]*model.User
}

func newFakeUserRepo(users ...*model.User) *fakeUserRepo {
	m := make(map[uint64]*model.User, len(users))
	for _, u := range users {
		m[u.ID] = u
	}
	return &fakeUserRepo{users: m}
}

func (s *fakeUserRepo) GetUserById(_ context.Context, id uint64) (*model.User, error) {
	return s.users[id], nil
}

func (s *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (s *fakeUserRepo) GetUserByIds(_ context.Context, ids []uint64) ([]*model.User, error) {
	res := make([]*model.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := s.users[id]; ok {
			res = append(res, u)
		}
	}
	return res, nil
}

func (s *fakeUserRepo) CreateUser(_ context.Context, user *model.User) error {
	user.ID = uint64(len(s.users) + 1)
	s.users[user.ID] = user
	return nil
}

func (s *fakeUserRepo) GetActiveUserIds(_ context.Context, excludeID uint64) ([]uint64, error) {
	ids := make([]uint64, 0, len(s.users))
	for id, u := range s.users {
		if !u.IsActive || id == excludeID {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func activeUser(id uint64) *model.User {
	return &model.User{ID: id, FullName: "用户", Email: "u@example.com", IsActive: true}
}

func TestNotifyUserPushOrdering(t *testing.T) {
	pusher := newFakePusher()
	notifRepo := &fakeNotifRepo{}
	userRepo := newFakeUserRepo(activeUser(1))
	svc := NewDeliveryService(pusher, notifRepo, userRepo)

	_, err := notifRepo.Create(context.Background(), &model.Notification{UserID: 1, Message: "新动态"})
	require.NoError(t, err)

	svc.NotifyUser(context.Background(), 1, &dto.NotificationDTO{ID: 1, Message: "新动态"})

	events := pusher.eventsFor(t, 1)
	require.Len(t, events, 2)
	// 先收到通知本体，再收到未读数
	assert.Equal(t, realtime.EventNewNotification, events[0].Type)
	assert.Equal(t, realtime.EventUnreadCount, events[1].Type)

	var count dto.UnreadCountDTO
	require.NoError(t, json.Unmarshal(events[1].Data, &count))
	assert.Equal(t, int64(1), count.Count)
}

func TestNotifyUsersFailureIsolation(t *testing.T) {
	pusher := newFakePusher()
	pusher.panicFor = 2
	notifRepo := &fakeNotifRepo{}
	userRepo := newFakeUserRepo(activeUser(1), activeUser(2), activeUser(3))
	svc := NewDeliveryService(pusher, notifRepo, userRepo)

	n := &dto.NotificationDTO{Message: "广播"}
	assert.NotPanics(t, func() {
		svc.NotifyUsers(context.Background(), []uint64{1, 2, 3}, n)
	})

	// 用户 2 的通道炸了，1 和 3 照常收到两帧
	assert.Len(t, pusher.eventsFor(t, 1), 2)
	assert.Len(t, pusher.eventsFor(t, 2), 0)
	assert.Len(t, pusher.eventsFor(t, 3), 2)
}

func TestBroadcastExceptUserExcludesActor(t *testing.T) {
	pusher := newFakePusher()
	notifRepo := &fakeNotifRepo{}
	userRepo := newFakeUserRepo(activeUser(1), activeUser(2), activeUser(3))
	svc := NewDeliveryService(pusher, notifRepo, userRepo)

	svc.BroadcastExceptUser(context.Background(), 2, &dto.NotificationDTO{Message: "新帖"})

	assert.NotEmpty(t, pusher.eventsFor(t, 1))
	assert.Empty(t, pusher.eventsFor(t, 2))
	assert.NotEmpty(t, pusher.eventsFor(t, 3))
}

func TestBroadcastSkipsInactiveUsers(t *testing.T) {
	pusher := newFakePusher()
	notifRepo := &fakeNotifRepo{}
	inactive := activeUser(5)
	inactive.IsActive = false
	userRepo := newFakeUserRepo(activeUser(1), inactive)
	svc := NewDeliveryService(pusher, notifRepo, userRepo)

	svc.BroadcastExceptUser(context.Background(), 9, &dto.NotificationDTO{Message: "新帖"})

	assert.NotEmpty(t, pusher.eventsFor(t, 1))
	assert.Empty(t, pusher.eventsFor(t, 5))
}
