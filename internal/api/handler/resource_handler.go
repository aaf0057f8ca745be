package handler

import (
	"Orion/internal/pkg/response"
	"Orion/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ResourceHandler struct {
	resourceSvc service.ResourceService
}

func NewResourceHandler(resourceSvc service.ResourceService) *ResourceHandler {
	return &ResourceHandler{resourceSvc: resourceSvc}
}

func (s *ResourceHandler) ListResources(c *gin.Context) {
	categories, err := s.resourceSvc.ListResources(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, categories)
}

// UploadResource 上传资源文件，multipart 表单：file + category_id + title
func (s *ResourceHandler) UploadResource(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil || file == nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	categoryID, err := strconv.ParseUint(c.PostForm("category_id"), 10, 64)
	if err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	title := c.PostForm("title")
	if title == "" {
		title = file.Filename
	}

	reader, err := file.Open()
	if err != nil {
		response.Error(c, err)
		return
	}
	defer func() {
		_ = reader.Close()
	}()

	result, err := s.resourceSvc.UploadResource(c.Request.Context(), categoryID, title, file.Filename, reader, file.Size)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}
