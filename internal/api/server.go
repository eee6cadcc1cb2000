package api

import (
	"chathub/internal/hub"
	ws "chathub/internal/websocket"

	"github.com/gin-gonic/gin"
)

// Serve runs the HTTP surface: the REST queries, the health check, and
// the WebSocket endpoint. Blocks until the listener fails.
func Serve(addr string, h *hub.Hub, gateway *ws.Gateway) error {
	r := gin.Default()
	r.Use(CORSMiddleware())

	router := NewRouter(h, gateway)
	router.RegisterRoutes(r)

	return r.Run(addr)
}
