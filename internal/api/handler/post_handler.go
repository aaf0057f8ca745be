package handler

import (
	"Orion/internal/api/dto"
	"Orion/internal/pkg/response"
	"Orion/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{postSvc: postSvc}
}

func (s *PostHandler) CreatePost(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var createDTO dto.CreatePostDTO
	err := c.ShouldBind(&createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	post, err := s.postSvc.CreatePost(c.Request.Context(), userID, &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, post)
}

func (s *PostHandler) GetPost(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	post, err := s.postSvc.GetPost(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) ListPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	list, err := s.postSvc.ListPosts(c.Request.Context(), page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

func (s *PostHandler) UpdatePost(c *gin.Context) {
	userID := c.GetUint64("user_id")
	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	var updateDTO dto.UpdatePostDTO
	if err = c.ShouldBind(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	err = s.postSvc.UpdatePost(c.Request.Context(), userID, postID, &updateDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *PostHandler) DeletePost(c *gin.Context) {
	userID := c.GetUint64("user_id")
	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	err = s.postSvc.DeletePost(c.Request.Context(), userID, postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *PostHandler) GetTrendingPosts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	posts, err := s.postSvc.GetTrendingPosts(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}
