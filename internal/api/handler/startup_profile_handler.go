package handler

import (
	"Orion/internal/pkg/response"
	"Orion/internal/service"

	"github.com/gin-gonic/gin"
)

type StartupProfileHandler struct {
	profileSvc service.StartupProfileService
}

func NewStartupProfileHandler(profileSvc service.StartupProfileService) *StartupProfileHandler {
	return &StartupProfileHandler{profileSvc: profileSvc}
}

func (s *StartupProfileHandler) GetProfile(c *gin.Context) {
	userID := c.GetUint64("user_id")
	profile, err := s.profileSvc.GetProfile(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, profile)
}

func (s *StartupProfileHandler) CreateProfile(c *gin.Context) {
	userID := c.GetUint64("user_id")
	profile, err := s.profileSvc.CreateProfile(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, profile)
}

func (s *StartupProfileHandler) DeleteProfile(c *gin.Context) {
	userID := c.GetUint64("user_id")
	if err := s.profileSvc.DeleteProfile(c.Request.Context(), userID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *StartupProfileHandler) GetCompletion(c *gin.Context) {
	userID := c.GetUint64("user_id")
	completion, err := s.profileSvc.GetCompletion(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, completion)
}

// UpdateSection 分区名走路径参数，非法分区由 service 校验
func (s *StartupProfileHandler) UpdateSection(c *gin.Context) {
	userID := c.GetUint64("user_id")
	raw, err := c.GetRawData()
	if err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	profile, err := s.profileSvc.UpdateSection(c.Request.Context(), userID, c.Param("section"), raw)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, profile)
}
