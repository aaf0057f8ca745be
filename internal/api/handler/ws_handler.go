package handler

import (
	"Orion/internal/api/dto"
	"Orion/internal/pkg/consts"
	"Orion/internal/pkg/redis"
	"Orion/internal/pkg/response"
	"Orion/internal/pkg/security"
	"Orion/internal/realtime"
	"Orion/internal/service"
	"context"
	log "log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

const (
	wsWriteTimeout = 10 * time.Second
	wsSendBuffer   = 64
	snapshotLimit  = 10
)

// wsClient 一条 websocket 连接，实现 realtime.Client。
// 所有出站帧经由 send 缓冲交给唯一的写循环，gorilla 的连接不允许并发写。
type wsClient struct {
	conn *websocket.Conn
	send chan []byte
	done chan struct{}
}

func newWsClient(conn *websocket.Conn) *wsClient {
	return &wsClient{
		conn: conn,
		send: make(chan []byte, wsSendBuffer),
		done: make(chan struct{}),
	}
}

// Send 非阻塞投递，连接已关闭或缓冲满时返回 false
func (s *wsClient) Send(payload []byte) bool {
	select {
	case <-s.done:
		return false
	default:
	}
	select {
	case s.send <- payload:
		return true
	default:
		return false
	}
}

func (s *wsClient) Close() {
	select {
	case <-s.done:
	default:
		close(s.done)
	}
}

// writePump 唯一的写 goroutine，慢客户端由写超时兜底
func (s *wsClient) writePump() {
	for {
		select {
		case payload := <-s.send:
			_ = s.conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
			if err := s.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				s.Close()
				return
			}
		case <-s.done:
			return
		}
	}
}

type WsHandler struct {
	registry *realtime.Registry
	notifSvc service.NotificationService
}

func NewWsHandler(registry *realtime.Registry, notifSvc service.NotificationService) *WsHandler {
	return &WsHandler{
		registry: registry,
		notifSvc: notifSvc,
	}
}

// Connect 通知实时通道。鉴权失败的请求在协议升级之前就拒绝，
// 不给未认证方任何 websocket 资源。
func (s *WsHandler) Connect(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		token = c.GetHeader("Authorization")
		if len(token) > 7 && token[:7] == "Bearer " {
			token = token[7:]
		}
	}
	if token == "" {
		response.Error(c, service.UnauthorizedError)
		return
	}

	signature, err := security.ExtractSignature(token)
	if err != nil {
		response.Error(c, service.UnauthorizedError)
		return
	}
	revoked, err := redis.GetValue(c.Request.Context(), consts.TokenRevokedKey+signature)
	if err != nil || revoked != "" {
		response.Error(c, service.UnauthorizedError)
		return
	}

	claims, err := security.ValidateToken(token)
	if err != nil {
		log.Warn("WS 鉴权失败", "err", err)
		response.Error(c, service.UnauthorizedError)
		return
	}
	userID := claims.UserID

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error("WS 协议升级失败", "err", err)
		return
	}

	client := newWsClient(conn)
	go client.writePump()

	s.registry.Register(userID, client)
	log.Info("用户 WS 连接已建立", "user_id", userID, "online", s.registry.OnlineCount())

	defer func() {
		s.registry.Unregister(userID, client)
		client.Close()
		_ = conn.Close()
		log.Info("用户 WS 连接已断开", "user_id", userID)
	}()

	// 连接建立即推快照，客户端不用再发一轮请求
	s.pushSnapshot(c.Request.Context(), userID, client)

	// 读循环：处理客户端上行的已读指令，连接错误即退出
	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			return
		}
		s.handleInbound(c.Request.Context(), userID, payload)
	}
}

// pushSnapshot 按固定顺序推送连接快照：先未读数，后历史列表
func (s *WsHandler) pushSnapshot(ctx context.Context, userID uint64, client *wsClient) {
	count, err := s.notifSvc.UnreadCount(ctx, userID)
	if err != nil {
		log.ErrorContext(ctx, "快照未读数查询失败", "user_id", userID, "err", err)
	} else if payload, err := realtime.NewEvent(realtime.EventUnreadCount, count); err == nil {
		client.Send(payload)
	}

	list, err := s.notifSvc.List(ctx, userID, 1, snapshotLimit, false)
	if err != nil {
		log.ErrorContext(ctx, "快照历史查询失败", "user_id", userID, "err", err)
		return
	}
	if payload, err := realtime.NewEvent(realtime.EventHistory, list.Notifications); err == nil {
		client.Send(payload)
	}
}

// handleInbound 处理客户端上行事件，处理完重推未读数让所有端对齐
func (s *WsHandler) handleInbound(ctx context.Context, userID uint64, payload []byte) {
	event, err := realtime.DecodeEvent(payload)
	if err != nil {
		log.WarnContext(ctx, "WS 上行消息解析失败", "user_id", userID, "err", err)
		return
	}

	switch event.Type {
	case realtime.EventMarkRead:
		var markDTO dto.MarkReadDTO
		if err = json.Unmarshal(event.Data, &markDTO); err != nil || len(markDTO.NotificationIds) == 0 {
			return
		}
		if _, err = s.notifSvc.MarkRead(ctx, userID, markDTO.NotificationIds); err != nil {
			log.ErrorContext(ctx, "WS 标记已读失败", "user_id", userID, "err", err)
			return
		}
	case realtime.EventMarkAllRead:
		if _, err = s.notifSvc.MarkAllRead(ctx, userID); err != nil {
			log.ErrorContext(ctx, "WS 全部已读失败", "user_id", userID, "err", err)
			return
		}
	default:
		return
	}

	count, err := s.notifSvc.UnreadCount(ctx, userID)
	if err != nil {
		log.ErrorContext(ctx, "未读数查询失败", "user_id", userID, "err", err)
		return
	}
	if payload, err := realtime.NewEvent(realtime.EventUnreadCount, count); err == nil {
		s.registry.Push(userID, payload)
	}
}
