package api

import (
	"net/http"
	"strconv"

	"chathub/internal/hub"
	"chathub/pkg/chat"

	"github.com/gin-gonic/gin"
)

const defaultMessageLimit = 50

type MessageHandlers struct {
	hub *hub.Hub
}

func NewMessageHandlers(h *hub.Hub) *MessageHandlers {
	return &MessageHandlers{hub: h}
}

type MessagesResponse struct {
	Success  bool           `json:"success"`
	Messages []chat.Message `json:"messages"`
}

// GetMessagesHandler returns the most recent messages across all rooms,
// oldest first. The limit query parameter defaults to 50; unparseable
// values fall back to the default rather than erroring.
func (h *MessageHandlers) GetMessagesHandler(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", strconv.Itoa(defaultMessageLimit))
	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		limit = defaultMessageLimit
	}

	c.JSON(http.StatusOK, MessagesResponse{
		Success:  true,
		Messages: h.hub.Messages(limit),
	})
}
