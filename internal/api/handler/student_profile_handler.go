package handler

import (
	"Orion/internal/api/dto"
	"Orion/internal/pkg/response"
	"Orion/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type StudentProfileHandler struct {
	profileSvc service.StudentProfileService
}

func NewStudentProfileHandler(profileSvc service.StudentProfileService) *StudentProfileHandler {
	return &StudentProfileHandler{profileSvc: profileSvc}
}

func (s *StudentProfileHandler) GetProfile(c *gin.Context) {
	userID := c.GetUint64("user_id")
	profile, err := s.profileSvc.GetProfile(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, profile)
}

func (s *StudentProfileHandler) CreateProfile(c *gin.Context) {
	userID := c.GetUint64("user_id")
	profile, err := s.profileSvc.CreateProfile(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, profile)
}

func (s *StudentProfileHandler) DeleteProfile(c *gin.Context) {
	userID := c.GetUint64("user_id")
	if err := s.profileSvc.DeleteProfile(c.Request.Context(), userID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *StudentProfileHandler) GetCompletion(c *gin.Context) {
	userID := c.GetUint64("user_id")
	completion, err := s.profileSvc.GetCompletion(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, completion)
}

// UpdatePersonalInfo 分区为部分更新语义，原始 JSON 直接交给 service 合并
func (s *StudentProfileHandler) UpdatePersonalInfo(c *gin.Context) {
	userID := c.GetUint64("user_id")
	raw, err := c.GetRawData()
	if err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	info, err := s.profileSvc.UpdatePersonalInfo(c.Request.Context(), userID, raw)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, info)
}

func (s *StudentProfileHandler) UpdateSkills(c *gin.Context) {
	userID := c.GetUint64("user_id")
	raw, err := c.GetRawData()
	if err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	skills, err := s.profileSvc.UpdateSkills(c.Request.Context(), userID, raw)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, skills)
}

func (s *StudentProfileHandler) AddEducation(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var req dto.EducationRecordDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	record, err := s.profileSvc.AddEducation(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, record)
}

func (s *StudentProfileHandler) UpdateEducation(c *gin.Context) {
	userID := c.GetUint64("user_id")
	recordID, err := strconv.ParseUint(c.Param("recordId"), 10, 64)
	if err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	var req dto.EducationRecordDTO
	if err = c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err = s.profileSvc.UpdateEducation(c.Request.Context(), userID, recordID, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *StudentProfileHandler) DeleteEducation(c *gin.Context) {
	userID := c.GetUint64("user_id")
	recordID, err := strconv.ParseUint(c.Param("recordId"), 10, 64)
	if err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	if err = s.profileSvc.DeleteEducation(c.Request.Context(), userID, recordID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *StudentProfileHandler) AddWorkExperience(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var req dto.WorkExperienceDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	record, err := s.profileSvc.AddWorkExperience(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, record)
}

func (s *StudentProfileHandler) UpdateWorkExperience(c *gin.Context) {
	userID := c.GetUint64("user_id")
	recordID, err := strconv.ParseUint(c.Param("recordId"), 10, 64)
	if err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	var req dto.WorkExperienceDTO
	if err = c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err = s.profileSvc.UpdateWorkExperience(c.Request.Context(), userID, recordID, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *StudentProfileHandler) DeleteWorkExperience(c *gin.Context) {
	userID := c.GetUint64("user_id")
	recordID, err := strconv.ParseUint(c.Param("recordId"), 10, 64)
	if err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	if err = s.profileSvc.DeleteWorkExperience(c.Request.Context(), userID, recordID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *StudentProfileHandler) AddCertificate(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var req dto.CertificateDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	record, err := s.profileSvc.AddCertificate(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, record)
}

func (s *StudentProfileHandler) UpdateCertificate(c *gin.Context) {
	userID := c.GetUint64("user_id")
	recordID, err := strconv.ParseUint(c.Param("recordId"), 10, 64)
	if err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	var req dto.CertificateDTO
	if err = c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err = s.profileSvc.UpdateCertificate(c.Request.Context(), userID, recordID, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *StudentProfileHandler) DeleteCertificate(c *gin.Context) {
	userID := c.GetUint64("user_id")
	recordID, err := strconv.ParseUint(c.Param("recordId"), 10, 64)
	if err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	if err = s.profileSvc.DeleteCertificate(c.Request.Context(), userID, recordID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
