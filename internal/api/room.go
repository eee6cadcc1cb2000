package api

import (
	"net/http"

	"chathub/internal/hub"
	"chathub/pkg/chat"

	"github.com/gin-gonic/gin"
)

type RoomHandlers struct {
	hub *hub.Hub
}

func NewRoomHandlers(h *hub.Hub) *RoomHandlers {
	return &RoomHandlers{hub: h}
}

type RoomInfoResponse struct {
	Success bool          `json:"success"`
	Room    chat.RoomInfo `json:"room"`
}

// GetRoomInfoHandler returns a room and its member connection ids.
// Unknown rooms yield an empty member list, never an error.
func (h *RoomHandlers) GetRoomInfoHandler(c *gin.Context) {
	c.JSON(http.StatusOK, RoomInfoResponse{
		Success: true,
		Room:    h.hub.RoomInfo(c.Param("name")),
	})
}
