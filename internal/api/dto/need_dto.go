package dto

import "time"

// CreateNeedDTO 发布需求
type CreateNeedDTO struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description"`
	Type        string `json:"type" binding:"required,oneof=cofounder intern resource"`
}

type UpdateNeedDTO struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description"`
	Type        string `json:"type" binding:"required,oneof=cofounder intern resource"`
}

type NeedDTO struct {
	ID          uint64     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Type        string     `json:"type"`
	CreatedAt   time.Time  `json:"created_at"`
	Author      *AuthorDTO `json:"author"`
}

type NeedListDTO struct {
	Needs      []*NeedDTO     `json:"needs"`
	Pagination *PaginationDTO `json:"pagination"`
}
