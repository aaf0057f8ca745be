package dto

import "time"

// CreateSessionDTO 创建直播/分享会
type CreateSessionDTO struct {
	Title       string    `json:"title" binding:"required,max=255"`
	Description string    `json:"description"`
	Type        string    `json:"type" binding:"required,oneof=workshop ama pitch"`
	Link        string    `json:"link" binding:"omitempty,url"`
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
}

type SessionDTO struct {
	ID          uint64     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Type        string     `json:"type"`
	Link        string     `json:"link"`
	ScheduledAt time.Time  `json:"scheduled_at"`
	CreatedAt   time.Time  `json:"created_at"`
	Host        *AuthorDTO `json:"host"`
}

type SessionListDTO struct {
	Sessions   []*SessionDTO  `json:"sessions"`
	Pagination *PaginationDTO `json:"pagination"`
}
