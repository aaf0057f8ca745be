package handler

import (
	"Orion/internal/api/dto"
	"Orion/internal/service"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotificationService struct {
	listResult   *dto.NotificationListDTO
	unread       int64
	markedIds    []uint64
	markAllCount int64
	deleteErr    error
}

func (s *fakeNotificationService) Create(_ context.Context, _ uint64, _ string, _, _, _ *uint64) (*dto.NotificationDTO, error) {
	return nil, nil
}

func (s *fakeNotificationService) CreateBulk(_ context.Context, _ []uint64, _ string, _, _, _ *uint64) (int64, error) {
	return 0, nil
}

func (s *fakeNotificationService) List(_ context.Context, _ uint64, _, _ int, _ bool) (*dto.NotificationListDTO, error) {
	return s.listResult, nil
}

func (s *fakeNotificationService) UnreadCount(_ context.Context, _ uint64) (*dto.UnreadCountDTO, error) {
	return &dto.UnreadCountDTO{Count: s.unread}, nil
}

func (s *fakeNotificationService) MarkRead(_ context.Context, _ uint64, ids []uint64) (int64, error) {
	s.markedIds = ids
	return int64(len(ids)), nil
}

func (s *fakeNotificationService) MarkAllRead(_ context.Context, _ uint64) (int64, error) {
	return s.markAllCount, nil
}

func (s *fakeNotificationService) Delete(_ context.Context, _ uint64, _ uint64) error {
	return s.deleteErr
}

func setupNotificationRouter(svc service.NotificationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// 测试里跳过鉴权中间件，直接注入用户身份
	r.Use(func(c *gin.Context) {
		c.Set("user_id", uint64(1))
	})
	h := NewNotificationHandler(svc)
	r.GET("/api/notifications", h.ListNotifications)
	r.GET("/api/notifications/unread-count", h.GetUnreadCount)
	r.POST("/api/notifications/mark-read", h.MarkRead)
	r.POST("/api/notifications/mark-all-read", h.MarkAllRead)
	r.DELETE("/api/notifications/:id", h.DeleteNotification)
	return r
}

func TestListNotificationsEnvelope(t *testing.T) {
	svc := &fakeNotificationService{
		listResult: &dto.NotificationListDTO{
			Notifications: []*dto.NotificationDTO{{ID: 1, Message: "新动态"}},
			Pagination:    &dto.PaginationDTO{Page: 1, Limit: 20, Total: 1, TotalPages: 1},
		},
	}
	r := setupNotificationRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/notifications", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Nil(t, body.Error)
	assert.NotNil(t, body.Data)
}

func TestGetUnreadCount(t *testing.T) {
	svc := &fakeNotificationService{unread: 4}
	r := setupNotificationRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/notifications/unread-count", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":4`)
}

func TestMarkReadValidation(t *testing.T) {
	svc := &fakeNotificationService{}
	r := setupNotificationRouter(svc)

	// 空 ID 列表被 binding 拦下
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/notifications/mark-read",
		strings.NewReader(`{"notification_ids": []}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, 400, body.Error.Code)
	assert.Nil(t, svc.markedIds)
}

func TestMarkReadSuccess(t *testing.T) {
	svc := &fakeNotificationService{}
	r := setupNotificationRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/notifications/mark-read",
		strings.NewReader(`{"notification_ids": [3, 5]}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []uint64{3, 5}, svc.markedIds)
	assert.Contains(t, w.Body.String(), `"updated":2`)
}

func TestDeleteNotificationNotFound(t *testing.T) {
	svc := &fakeNotificationService{deleteErr: service.ErrNotificationNotFound}
	r := setupNotificationRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/notifications/99", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var body dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, 404, body.Error.Code)
}

func TestDeleteNotificationBadID(t *testing.T) {
	svc := &fakeNotificationService{}
	r := setupNotificationRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/notifications/abc", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
