package api

import "Orion/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	UserHandler           *handler.UserHandler
	PostHandler           *handler.PostHandler
	PostActionHandler     *handler.PostActionHandler
	SessionHandler        *handler.SessionHandler
	NeedHandler           *handler.NeedHandler
	NotificationHandler   *handler.NotificationHandler
	ResourceHandler       *handler.ResourceHandler
	StudentProfileHandler *handler.StudentProfileHandler
	StartupProfileHandler *handler.StartupProfileHandler
	ExploreHandler        *handler.ExploreHandler
	UserActivityHandler   *handler.UserActivityHandler
	WSHandler             *handler.WsHandler
}
