package api

import (
	"net/http"
	"time"

	"chathub/internal/hub"
	ws "chathub/internal/websocket"
	"chathub/pkg/chat"

	"github.com/gin-gonic/gin"
)

type WebSocketHandler struct {
	hub     *hub.Hub
	gateway *ws.Gateway
}

func NewWebSocketHandler(h *hub.Hub, gateway *ws.Gateway) *WebSocketHandler {
	return &WebSocketHandler{hub: h, gateway: gateway}
}

// HandleWebSocket upgrades the request and hands the connection to the
// gateway.
func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	h.gateway.Handle(c.Writer, c.Request)
}

type WebSocketInfoResponse struct {
	TotalConnections int            `json:"total_connections"`
	OnlineUsers      int            `json:"online_users"`
	RoomStats        map[string]int `json:"room_stats"`
	ServerTime       string         `json:"server_time"`
}

// GetConnectionInfo reports live connection and room statistics.
func (h *WebSocketHandler) GetConnectionInfo(c *gin.Context) {
	c.JSON(http.StatusOK, WebSocketInfoResponse{
		TotalConnections: h.gateway.ConnectionCount(),
		OnlineUsers:      h.hub.OnlineCount(),
		RoomStats:        h.hub.RoomCounts(),
		ServerTime:       chat.Timestamp(time.Now()),
	})
}
