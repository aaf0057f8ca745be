package realtime

import (
	"github.com/goccy/go-json"
)

// 实时事件名
const (
	// 服务端 -> 客户端
	EventNewNotification = "notification:new"
	EventUnreadCount     = "notification:unread-count"
	EventHistory         = "notification:history"

	// 客户端 -> 服务端
	EventMarkRead    = "notification:mark-read"
	EventMarkAllRead = "notification:mark-all-read"
)

// Event 实时通道上的统一消息帧
type Event struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// NewEvent 组装一帧出站事件
func NewEvent(eventType string, data any) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(&Event{Type: eventType, Data: raw})
}

// DecodeEvent 解析一帧入站事件
func DecodeEvent(payload []byte) (*Event, error) {
	e := &Event{}
	if err := json.Unmarshal(payload, e); err != nil {
		return nil, err
	}
	return e, nil
}
