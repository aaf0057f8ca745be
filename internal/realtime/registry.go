package realtime

import (
	"sync"
)

// Client 一条实时连接的抽象。Send 非阻塞，返回 false 表示该连接的发送缓冲已满。
// 具体的 websocket 实现在 handler 层。
type Client interface {
	Send(payload []byte) bool
	Close()
}

// Registry 进程内在线连接表：用户 ID -> 该用户当前存活的连接集合。
// 支持同一用户多端在线；进程重启即清空（在线状态本就是尽力而为的缓存，
// 通知的事实来源永远是数据库）。
// 多个请求 goroutine 会并发注册/注销，必须持锁，且不对外暴露内部 map。
type Registry struct {
	mu    sync.RWMutex
	conns map[uint64]map[Client]struct{}
}

func NewRegistry() *Registry {
	return &Registry{
		conns: make(map[uint64]map[Client]struct{}),
	}
}

// Register 将连接挂到用户名下，重复注册同一连接是幂等的
func (r *Registry) Register(userID uint64, c Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.conns[userID]; !ok {
		r.conns[userID] = make(map[Client]struct{})
	}
	r.conns[userID][c] = struct{}{}
}

// Unregister 移除连接，该用户最后一条连接断开时整个条目一并移除
func (r *Registry) Unregister(userID uint64, c Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if set, ok := r.conns[userID]; ok {
		delete(set, c)
		if len(set) == 0 {
			delete(r.conns, userID)
		}
	}
}

// Push 向用户的全部在线连接推送同一份数据（多端同时收到）。
// 用户不在线时静默返回——记录已落库，客户端之后拉列表即可补齐。
func (r *Registry) Push(userID uint64, payload []byte) {
	r.mu.RLock()
	clients := make([]Client, 0, 2)
	for c := range r.conns[userID] {
		clients = append(clients, c)
	}
	r.mu.RUnlock()

	for _, c := range clients {
		// 发送失败（缓冲满）交由连接自身的写循环清理
		_ = c.Send(payload)
	}
}

// IsOnline 用户是否至少有一条存活连接。与真实 socket 状态最终一致，
// 不保证不和一次并发断开竞争。
func (r *Registry) IsOnline(userID uint64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.conns[userID]
	return ok
}

// OnlineCount 当前在线的去重用户数
func (r *Registry) OnlineCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.conns)
}
