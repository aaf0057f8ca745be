package handler

import (
	"Orion/internal/api/dto"
	"Orion/internal/pkg/response"
	"Orion/internal/service"
	"strings"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

func (s *UserHandler) Register(c *gin.Context) {
	var registerDTO dto.RegisterDTO
	err := c.ShouldBind(&registerDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	result, err := s.userSvc.Register(c.Request.Context(), &registerDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

func (s *UserHandler) Login(c *gin.Context) {
	var loginDTO dto.LoginDTO
	err := c.ShouldBind(&loginDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	result, err := s.userSvc.Login(c.Request.Context(), &loginDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *UserHandler) Logout(c *gin.Context) {
	token := c.Request.Header.Get("Authorization")
	token = strings.Replace(token, "Bearer ", "", 1)
	err := s.userSvc.Logout(c.Request.Context(), token)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserHandler) GetMe(c *gin.Context) {
	userID := c.GetUint64("user_id")
	userDTO, err := s.userSvc.GetMe(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, userDTO)
}
