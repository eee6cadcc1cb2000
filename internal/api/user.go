package api

import (
	"net/http"

	"chathub/internal/hub"
	"chathub/pkg/chat"

	"github.com/gin-gonic/gin"
)

type UserHandlers struct {
	hub *hub.Hub
}

func NewUserHandlers(h *hub.Hub) *UserHandlers {
	return &UserHandlers{hub: h}
}

type OnlineUsersResponse struct {
	Success bool            `json:"success"`
	Users   []chat.UserInfo `json:"users"`
}

// GetOnlineUsersHandler returns the current presence snapshot.
func (h *UserHandlers) GetOnlineUsersHandler(c *gin.Context) {
	c.JSON(http.StatusOK, OnlineUsersResponse{
		Success: true,
		Users:   h.hub.OnlineUsers(),
	})
}
