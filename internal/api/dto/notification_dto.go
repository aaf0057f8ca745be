package dto

import "time"

// NotificationDTO 单条通知，关联对象只带展示字段
type NotificationDTO struct {
	ID        uint64    `json:"id"`
	Message   string    `json:"message"`
	PostID    *uint64   `json:"post_id,omitempty"`
	SessionID *uint64   `json:"session_id,omitempty"`
	NeedID    *uint64   `json:"need_id,omitempty"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`

	Post    *NotificationPostRefDTO `json:"post,omitempty"`
	Session *NotificationRefDTO     `json:"session,omitempty"`
	Need    *NotificationRefDTO     `json:"need,omitempty"`
}

// NotificationPostRefDTO 通知里冗余的帖子信息
type NotificationPostRefDTO struct {
	ID   uint64 `json:"id"`
	Text string `json:"text"`
}

// NotificationRefDTO 通知里冗余的 session/need 信息
type NotificationRefDTO struct {
	ID    uint64 `json:"id"`
	Title string `json:"title"`
	Type  string `json:"type"`
}

// NotificationListDTO 通知分页
type NotificationListDTO struct {
	Notifications []*NotificationDTO `json:"notifications"`
	Pagination    *PaginationDTO     `json:"pagination"`
}

// UnreadCountDTO 未读数快照
type UnreadCountDTO struct {
	Count int64 `json:"count"`
}

// MarkReadDTO 批量已读
type MarkReadDTO struct {
	NotificationIds []uint64 `json:"notification_ids" binding:"required,min=1"`
}
