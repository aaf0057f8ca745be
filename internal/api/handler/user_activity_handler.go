package handler

import (
	"Orion/internal/pkg/response"
	"Orion/internal/service"

	"github.com/gin-gonic/gin"
)

type UserActivityHandler struct {
	activitySvc service.UserActivityService
}

func NewUserActivityHandler(activitySvc service.UserActivityService) *UserActivityHandler {
	return &UserActivityHandler{activitySvc: activitySvc}
}

// GetMyActivities 当前用户的全部历史动作，按时间倒序
func (s *UserActivityHandler) GetMyActivities(c *gin.Context) {
	userID := c.GetUint64("user_id")
	activities, err := s.activitySvc.GetUserActivities(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, activities)
}
