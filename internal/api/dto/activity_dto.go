package dto

import "time"

// ActivityDTO 用户的一条历史动作，按类型只填对应的关联对象
type ActivityDTO struct {
	Type      string      `json:"type"` // POST / COMMENT / LIKE / SESSION / NEED
	CreatedAt time.Time   `json:"created_at"`
	Post      *PostDTO    `json:"post,omitempty"`
	Comment   *CommentDTO `json:"comment,omitempty"`
	Session   *SessionDTO `json:"session,omitempty"`
	Need      *NeedDTO    `json:"need,omitempty"`
}

type ActivityListDTO struct {
	Activities []*ActivityDTO `json:"activities"`
}
