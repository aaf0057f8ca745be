package handler

import (
	"Orion/internal/api/dto"
	"Orion/internal/pkg/response"
	"Orion/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type NeedHandler struct {
	needSvc service.NeedService
}

func NewNeedHandler(needSvc service.NeedService) *NeedHandler {
	return &NeedHandler{needSvc: needSvc}
}

func (s *NeedHandler) CreateNeed(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var createDTO dto.CreateNeedDTO
	err := c.ShouldBind(&createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	need, err := s.needSvc.CreateNeed(c.Request.Context(), userID, &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, need)
}

func (s *NeedHandler) GetNeed(c *gin.Context) {
	needID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	need, err := s.needSvc.GetNeed(c.Request.Context(), needID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, need)
}

func (s *NeedHandler) ListNeeds(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	needType := c.Query("type")

	list, err := s.needSvc.ListNeeds(c.Request.Context(), needType, page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

func (s *NeedHandler) UpdateNeed(c *gin.Context) {
	userID := c.GetUint64("user_id")
	needID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	var updateDTO dto.UpdateNeedDTO
	if err = c.ShouldBind(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	err = s.needSvc.UpdateNeed(c.Request.Context(), userID, needID, &updateDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *NeedHandler) DeleteNeed(c *gin.Context) {
	userID := c.GetUint64("user_id")
	needID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	err = s.needSvc.DeleteNeed(c.Request.Context(), userID, needID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
