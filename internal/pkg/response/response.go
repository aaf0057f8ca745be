package response

import (
	"Orion/internal/api/dto"
	"Orion/internal/service"
	"errors"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500
)

// Success 成功返回封装：{"success": true, "data": ...}
func Success(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, dto.Response{
		Success: true,
		Data:    data,
	})
}

// Created 资源创建成功
func Created(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusCreated, dto.Response{
		Success: true,
		Data:    data,
	})
}

// Fail 失败返回封装：{"success": false, "error": {"code": ..., "message": ...}}
// HTTP 状态码与业务码保持一致
func Fail(c *gin.Context, code int, message string) {
	c.JSON(code, dto.Response{
		Success: false,
		Error:   &dto.ErrorBody{Code: code, Message: message},
	})
}

// Error 把 service 层错误映射为统一的失败响应
func Error(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		Fail(c, BadRequest, "参数错误")
		return
	}

	var unmarshalTypeError *json.UnmarshalTypeError
	if errors.As(err, &unmarshalTypeError) {
		Fail(c, BadRequest, "Json错误")
		return
	}

	code, ok := service.ErrorMap[err]
	if !ok {
		code = InternalServerError
		log.Error("Error", "err", err)
	}
	Fail(c, code, err.Error())
}
