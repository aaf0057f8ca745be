package dto

import "time"

// RegisterDTO 注册
type RegisterDTO struct {
	FullName string `json:"full_name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Role     string `json:"role" binding:"required,oneof=student startup"`
}

// LoginDTO 登录
type LoginDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserDTO 用户
type UserDTO struct {
	ID        uint64    `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResultDTO 注册/登录返回
type AuthResultDTO struct {
	Token string   `json:"token"`
	User  *UserDTO `json:"user"`
}
