package api

import (
	"chathub/internal/hub"
	ws "chathub/internal/websocket"

	"github.com/gin-gonic/gin"
)

type Router struct {
	uh *UserHandlers
	mh *MessageHandlers
	rh *RoomHandlers
	wh *WebSocketHandler
}

func NewRouter(h *hub.Hub, gateway *ws.Gateway) *Router {
	return &Router{
		uh: NewUserHandlers(h),
		mh: NewMessageHandlers(h),
		rh: NewRoomHandlers(h),
		wh: NewWebSocketHandler(h, gateway),
	}
}

func (r *Router) RegisterRoutes(router *gin.Engine) {
	router.GET("/hc", HealthCheckHandler)
	router.GET("/ws", r.wh.HandleWebSocket)
	router.GET("/ws/info", r.wh.GetConnectionInfo)

	{
		api := router.Group("/api")
		api.GET("/users/online", r.uh.GetOnlineUsersHandler)
		api.GET("/messages", r.mh.GetMessagesHandler)
		api.GET("/rooms/:name", r.rh.GetRoomInfoHandler)
	}
}

func HealthCheckHandler(c *gin.Context) {
	c.String(200, "Running")
}
