package handler

import (
	"Orion/internal/api/dto"
	"Orion/internal/realtime"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupWsRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewWsHandler(realtime.NewRegistry(), &fakeNotificationService{})
	r.GET("/api/notifications/ws", h.Connect)
	return r
}

// 未认证请求在协议升级之前就被拒绝
func TestWsConnectWithoutToken(t *testing.T) {
	r := setupWsRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/notifications/ws", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestWsConnectMalformedToken(t *testing.T) {
	r := setupWsRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/notifications/ws?token=garbage", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// 连接快照固定先推未读数，再推历史列表
func TestPushSnapshotOrder(t *testing.T) {
	svc := &fakeNotificationService{
		unread: 3,
		listResult: &dto.NotificationListDTO{
			Notifications: []*dto.NotificationDTO{{ID: 1, Message: "新动态"}},
			Pagination:    &dto.PaginationDTO{Page: 1, Limit: 10, Total: 1, TotalPages: 1},
		},
	}
	h := NewWsHandler(realtime.NewRegistry(), svc)
	c := newWsClient(nil)

	h.pushSnapshot(context.Background(), 1, c)
	require.Len(t, c.send, 2)

	first, err := realtime.DecodeEvent(<-c.send)
	require.NoError(t, err)
	assert.Equal(t, realtime.EventUnreadCount, first.Type)

	var count dto.UnreadCountDTO
	require.NoError(t, json.Unmarshal(first.Data, &count))
	assert.Equal(t, int64(3), count.Count)

	second, err := realtime.DecodeEvent(<-c.send)
	require.NoError(t, err)
	assert.Equal(t, realtime.EventHistory, second.Type)
}

func TestWsClientSendAfterClose(t *testing.T) {
	c := newWsClient(nil)
	c.Close()
	assert.False(t, c.Send([]byte("late")))
	// 重复 Close 不应 panic
	assert.NotPanics(t, c.Close)
}

func TestWsClientSendBufferFull(t *testing.T) {
	c := newWsClient(nil)
	for i := 0; i < wsSendBuffer; i++ {
		assert.True(t, c.Send([]byte("x")))
	}
	// 写循环没在消费，缓冲满后丢弃而不是阻塞
	assert.False(t, c.Send([]byte("overflow")))
}
