package websocket

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"chathub/internal/hub"
	"chathub/pkg/chat"

	"github.com/gorilla/websocket"
	nanoid "github.com/matoous/go-nanoid/v2"
)

const defaultMaxMessageSize = 512

// Gateway upgrades HTTP requests to WebSocket connections, assigns each
// one an opaque connection id, and implements the hub's DeliverySink by
// resolving room-scoped instructions against the hub's membership.
type Gateway struct {
	hub            *hub.Hub
	upgrader       websocket.Upgrader
	maxMessageSize int64

	mu      sync.RWMutex
	clients map[string]*Client
}

func NewGateway(h *hub.Hub, maxMessageSize int64) *Gateway {
	if maxMessageSize <= 0 {
		maxMessageSize = defaultMaxMessageSize
	}
	return &Gateway{
		hub: h,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Browser clients are served from arbitrary origins.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		maxMessageSize: maxMessageSize,
		clients:        make(map[string]*Client),
	}
}

// Handle upgrades the request and runs the connection's pumps until it
// closes.
func (g *Gateway) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	id, err := nanoid.New()
	if err != nil {
		log.Printf("connection id generation failed: %v", err)
		conn.Close()
		return
	}

	client := newClient(g, conn, id)

	g.mu.Lock()
	g.clients[id] = client
	g.mu.Unlock()

	g.hub.Connect(id)

	go client.writePump()
	client.readPump()
}

// drop removes the client and tells the hub the connection is gone.
func (g *Gateway) drop(c *Client) {
	g.mu.Lock()
	current, ok := g.clients[c.id]
	if ok && current == c {
		delete(g.clients, c.id)
	}
	g.mu.Unlock()

	c.close()
	if ok && current == c {
		g.hub.Disconnect(c.id)
	}
}

// ConnectionCount returns the number of live connections.
func (g *Gateway) ConnectionCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.clients)
}

func encodeFrame(event string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(chat.Envelope{Event: event, Data: data})
}

func (g *Gateway) sendFrame(connID string, frame []byte) {
	g.mu.RLock()
	client, ok := g.clients[connID]
	g.mu.RUnlock()
	if ok {
		client.enqueue(frame)
	}
}

// SendToRoom delivers the event to every current member of room.
func (g *Gateway) SendToRoom(room, event string, payload any) {
	g.SendToRoomExcluding(room, "", event, payload)
}

// SendToConnection delivers the event to a single connection.
func (g *Gateway) SendToConnection(connID, event string, payload any) {
	frame, err := encodeFrame(event, payload)
	if err != nil {
		log.Printf("encoding %s failed: %v", event, err)
		return
	}
	g.sendFrame(connID, frame)
}

// SendToRoomExcluding delivers the event to every member of room except
// excludeID.
func (g *Gateway) SendToRoomExcluding(room, excludeID, event string, payload any) {
	frame, err := encodeFrame(event, payload)
	if err != nil {
		log.Printf("encoding %s failed: %v", event, err)
		return
	}
	for _, connID := range g.hub.RoomMembers(room) {
		if connID == excludeID {
			continue
		}
		g.sendFrame(connID, frame)
	}
}

// Broadcast delivers the event to every live connection regardless of
// room membership.
func (g *Gateway) Broadcast(event string, payload any) {
	frame, err := encodeFrame(event, payload)
	if err != nil {
		log.Printf("encoding %s failed: %v", event, err)
		return
	}

	g.mu.RLock()
	clients := make([]*Client, 0, len(g.clients))
	for _, client := range g.clients {
		clients = append(clients, client)
	}
	g.mu.RUnlock()

	for _, client := range clients {
		client.enqueue(frame)
	}
}
