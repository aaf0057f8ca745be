package handler

import (
	"Orion/internal/api/dto"
	"Orion/internal/pkg/response"
	"Orion/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ExploreHandler struct {
	exploreSvc service.ExploreService
}

func NewExploreHandler(exploreSvc service.ExploreService) *ExploreHandler {
	return &ExploreHandler{exploreSvc: exploreSvc}
}

// ListStartups 公开的创业公司列表，支持行业/融资阶段/地区/关键词筛选
func (s *ExploreHandler) ListStartups(c *gin.Context) {
	var query dto.ExploreQueryDTO
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}
	list, err := s.exploreSvc.ListStartups(c.Request.Context(), &query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

func (s *ExploreHandler) GetStartup(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	startup, err := s.exploreSvc.GetStartup(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, startup)
}
