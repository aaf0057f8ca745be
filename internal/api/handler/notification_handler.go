package handler

import (
	"Orion/internal/api/dto"
	"Orion/internal/pkg/response"
	"Orion/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notifSvc service.NotificationService
}

func NewNotificationHandler(notifSvc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifSvc: notifSvc}
}

// ListNotifications 当前用户的通知分页，支持 unread_only 过滤
func (s *NotificationHandler) ListNotifications(c *gin.Context) {
	userID := c.GetUint64("user_id")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	unreadOnly := c.Query("unread_only") == "true"

	list, err := s.notifSvc.List(c.Request.Context(), userID, page, limit, unreadOnly)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

func (s *NotificationHandler) GetUnreadCount(c *gin.Context) {
	userID := c.GetUint64("user_id")
	count, err := s.notifSvc.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, count)
}

// MarkRead 批量标记已读，只动属于当前用户的通知
func (s *NotificationHandler) MarkRead(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var markDTO dto.MarkReadDTO
	err := c.ShouldBind(&markDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	updated, err := s.notifSvc.MarkRead(c.Request.Context(), userID, markDTO.NotificationIds)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]int64{"updated": updated})
}

func (s *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID := c.GetUint64("user_id")
	updated, err := s.notifSvc.MarkAllRead(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]int64{"updated": updated})
}

func (s *NotificationHandler) DeleteNotification(c *gin.Context) {
	userID := c.GetUint64("user_id")
	notificationID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	err = s.notifSvc.Delete(c.Request.Context(), userID, notificationID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
