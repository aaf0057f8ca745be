package handler

import (
	"Orion/internal/api/dto"
	"Orion/internal/pkg/response"
	"Orion/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PostActionHandler struct {
	actionSvc service.PostActionService
}

func NewPostActionHandler(actionSvc service.PostActionService) *PostActionHandler {
	return &PostActionHandler{actionSvc: actionSvc}
}

// LikePost 点赞开关，返回当前是否点赞状态
func (s *PostActionHandler) LikePost(c *gin.Context) {
	userID := c.GetUint64("user_id")
	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	liked, err := s.actionSvc.LikePost(c.Request.Context(), userID, postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]bool{"liked": liked})
}

func (s *PostActionHandler) CreateComment(c *gin.Context) {
	userID := c.GetUint64("user_id")
	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	var commentDTO dto.CreateCommentDTO
	if err = c.ShouldBind(&commentDTO); err != nil {
		response.Error(c, err)
		return
	}
	comment, err := s.actionSvc.CreateComment(c.Request.Context(), userID, postID, &commentDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, comment)
}

func (s *PostActionHandler) GetComments(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	comments, err := s.actionSvc.GetComments(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comments)
}
