package handler

import (
	"Orion/internal/api/dto"
	"Orion/internal/pkg/response"
	"Orion/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	sessionSvc service.SessionService
}

func NewSessionHandler(sessionSvc service.SessionService) *SessionHandler {
	return &SessionHandler{sessionSvc: sessionSvc}
}

func (s *SessionHandler) CreateSession(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var createDTO dto.CreateSessionDTO
	err := c.ShouldBind(&createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	session, err := s.sessionSvc.CreateSession(c.Request.Context(), userID, &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, session)
}

func (s *SessionHandler) GetSession(c *gin.Context) {
	sessionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	session, err := s.sessionSvc.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, session)
}

func (s *SessionHandler) ListSessions(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	list, err := s.sessionSvc.ListSessions(c.Request.Context(), page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}
