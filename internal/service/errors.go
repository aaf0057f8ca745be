package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid         = errors.New("参数错误")
	ErrUserNotFound         = errors.New("用户不存在")
	ErrUserEmailExist       = errors.New("邮箱已注册")
	ErrPasswordIncorrect    = errors.New("邮箱或密码错误")
	ErrUserInactive         = errors.New("账号已停用")
	ErrPostNotFound         = errors.New("帖子不存在")
	ErrSessionNotFound      = errors.New("活动不存在")
	ErrNeedNotFound         = errors.New("需求不存在")
	ErrNotificationNotFound = errors.New("通知不存在")
	ErrProfileNotFound      = errors.New("资料不存在")
	ErrProfileItemNotFound  = errors.New("资料条目不存在")
	ErrStartupNotFound      = errors.New("创业公司不存在")
	ErrFileNotSupported     = errors.New("不支持的文件类型")
	UnauthorizedError       = errors.New("权限不足")
	UnExpectedError         = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:         BadRequest,
	ErrUserNotFound:         NotFound,
	ErrUserEmailExist:       BadRequest,
	ErrPasswordIncorrect:    Unauthorized,
	ErrUserInactive:         Unauthorized,
	ErrPostNotFound:         NotFound,
	ErrSessionNotFound:      NotFound,
	ErrNeedNotFound:         NotFound,
	ErrNotificationNotFound: NotFound,
	ErrProfileNotFound:      NotFound,
	ErrProfileItemNotFound:  NotFound,
	ErrStartupNotFound:      NotFound,
	ErrFileNotSupported:     BadRequest,
	UnauthorizedError:       Unauthorized,
	UnExpectedError:         InternalServerError,
}
