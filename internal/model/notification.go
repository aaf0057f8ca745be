package model

import (
	"time"
)

// Notification 站内通知，归属且仅归属一个用户。
// post_id / session_id / need_id 至多一个非空（业务约定，不在表结构上强制）。
// 复合唯一索引用于批量写入时跳过重复（重试广播不会产生重复行）。
type Notification struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	UserID    uint64    `gorm:"not null;index:idx_user_read,priority:1;uniqueIndex:idx_notification_dedupe" json:"user_id"`
	Message   string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_notification_dedupe" json:"message"`
	PostID    *uint64   `gorm:"uniqueIndex:idx_notification_dedupe" json:"post_id"`
	SessionID *uint64   `gorm:"uniqueIndex:idx_notification_dedupe" json:"session_id"`
	NeedID    *uint64   `gorm:"uniqueIndex:idx_notification_dedupe" json:"need_id"`
	IsRead    bool      `gorm:"type:tinyint(1);not null;default:0;index:idx_user_read,priority:2" json:"is_read"`
	CreatedAt time.Time `json:"created_at"`

	// 关联关系（展示用冗余信息的来源）
	Post    *Post    `gorm:"foreignKey:PostID;references:ID"`
	Session *Session `gorm:"foreignKey:SessionID;references:ID"`
	Need    *Need    `gorm:"foreignKey:NeedID;references:ID"`
}

func (Notification) TableName() string {
	return "notifications"
}
