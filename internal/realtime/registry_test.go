package realtime

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeClient struct {
	mu       sync.Mutex
	payloads [][]byte
	closed   bool
}

func (s *fakeClient) Send(payload []byte) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payloads = append(s.payloads, payload)
	return true
}

func (s *fakeClient) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

func (s *fakeClient) received() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.payloads)
}

func TestRegistryRegisterIdempotent(t *testing.T) {
	r := NewRegistry()
	c := &fakeClient{}

	r.Register(1, c)
	r.Register(1, c)

	r.Push(1, []byte("hello"))
	assert.Equal(t, 1, c.received())
	assert.Equal(t, 1, r.OnlineCount())
}

func TestRegistryMultiDevicePush(t *testing.T) {
	r := NewRegistry()
	phone := &fakeClient{}
	laptop := &fakeClient{}

	r.Register(7, phone)
	r.Register(7, laptop)

	r.Push(7, []byte("notice"))

	assert.Equal(t, 1, phone.received())
	assert.Equal(t, 1, laptop.received())
	assert.Equal(t, 1, r.OnlineCount())
}

func TestRegistryUnregisterRemovesEmptyEntry(t *testing.T) {
	r := NewRegistry()
	phone := &fakeClient{}
	laptop := &fakeClient{}

	r.Register(3, phone)
	r.Register(3, laptop)

	r.Unregister(3, phone)
	assert.True(t, r.IsOnline(3))

	r.Unregister(3, laptop)
	assert.False(t, r.IsOnline(3))
	assert.Equal(t, 0, r.OnlineCount())

	// 全部断开后推送静默丢弃
	r.Push(3, []byte("late"))
	assert.Equal(t, 0, phone.received())
}

func TestRegistryPushToOfflineUserIsNoop(t *testing.T) {
	r := NewRegistry()
	assert.NotPanics(t, func() {
		r.Push(42, []byte("nobody home"))
	})
}

func TestRegistryConcurrentAccess(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(uid uint64) {
			defer wg.Done()
			c := &fakeClient{}
			r.Register(uid%10, c)
			r.Push(uid%10, []byte("x"))
			r.Unregister(uid%10, c)
		}(uint64(i))
	}
	wg.Wait()

	assert.Equal(t, 0, r.OnlineCount())
}
