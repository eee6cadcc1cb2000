package hub

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"chathub/pkg/chat"
)

// DeliverySink pushes events out to connections. The transport layer
// implements it; the hub never waits on delivery, so implementations must
// not block.
type DeliverySink interface {
	SendToRoom(room, event string, payload any)
	SendToConnection(connID, event string, payload any)
	SendToRoomExcluding(room, excludeID, event string, payload any)
	// Broadcast reaches every connected client regardless of room. Used
	// only for the global user_left on disconnect.
	Broadcast(event string, payload any)
}

// Hub owns the registry, room directory, and message log, and turns
// inbound connection events into state mutations plus delivery
// instructions. All state is guarded by one mutex; no sink call is made
// while it is held.
type Hub struct {
	mu       sync.Mutex
	registry *Registry
	rooms    *RoomDirectory
	history  *MessageLog

	sink DeliverySink
	now  func() time.Time
}

func New(historySize int) *Hub {
	return &Hub{
		registry: NewRegistry(),
		rooms:    NewRoomDirectory(),
		history:  NewMessageLog(historySize),
		now:      time.Now,
	}
}

// SetSink binds the transport. Must be called before any event is
// handled.
func (h *Hub) SetSink(sink DeliverySink) {
	h.sink = sink
}

// DefaultUsername derives the placeholder display name for a connection
// that joined without one.
func DefaultUsername(connID string) string {
	if len(connID) > 8 {
		connID = connID[:8]
	}
	return "User_" + connID
}

// delivery is one pending instruction, built under the hub lock and
// flushed to the sink after it is released.
type delivery struct {
	scope   deliveryScope
	room    string
	connID  string
	event   string
	payload any
}

type deliveryScope int

const (
	toRoom deliveryScope = iota
	toConnection
	toRoomExcluding
	toEveryone
)

func (h *Hub) flush(deliveries []delivery) {
	for _, d := range deliveries {
		switch d.scope {
		case toRoom:
			h.sink.SendToRoom(d.room, d.event, d.payload)
		case toConnection:
			h.sink.SendToConnection(d.connID, d.event, d.payload)
		case toRoomExcluding:
			h.sink.SendToRoomExcluding(d.room, d.connID, d.event, d.payload)
		case toEveryone:
			h.sink.Broadcast(d.event, d.payload)
		}
	}
}

// Connect records nothing; a connection has no presence until it joins.
func (h *Hub) Connect(connID string) {
	log.Printf("client connected: %s", connID)
}

// Disconnect drops the connection from the registry and every room. If
// the connection had joined, everyone still online is told it left.
func (h *Hub) Disconnect(connID string) {
	h.mu.Lock()
	username, registered := h.registry.Lookup(connID)
	var deliveries []delivery
	if registered {
		h.registry.Unregister(connID)
		h.rooms.LeaveAll(connID)
		deliveries = append(deliveries, delivery{
			scope: toEveryone,
			event: chat.EventUserLeft,
			payload: chat.UserLeftPayload{
				UserID:   connID,
				Username: username,
			},
		})
	}
	h.mu.Unlock()

	if registered {
		log.Printf("user %s disconnected", username)
		h.flush(deliveries)
	}
}

// Join binds a display name to the connection and adds it to the room.
// Missing fields are defaulted, never rejected. The join side effects
// fire even when the connection already belongs to the room.
func (h *Hub) Join(connID, username, room string) {
	if username == "" {
		username = DefaultUsername(connID)
	}
	if room == "" {
		room = chat.DefaultRoom
	}

	h.mu.Lock()
	h.registry.Register(connID, username)
	h.rooms.Join(room, connID)
	timestamp := chat.Timestamp(h.now())
	snapshot := h.registry.Snapshot()
	h.mu.Unlock()

	deliveries := []delivery{
		{scope: toRoom, room: room, event: chat.EventUserJoined, payload: chat.UserJoinedPayload{
			UserID:   connID,
			Username: username,
			Room:     room,
		}},
		{scope: toRoom, room: room, event: chat.EventSystemMessage, payload: chat.SystemMessagePayload{
			Message:   fmt.Sprintf("%s joined the chat", username),
			Timestamp: timestamp,
		}},
		{scope: toConnection, connID: connID, event: chat.EventOnlineUsers, payload: chat.OnlineUsersPayload{
			Users: snapshot,
		}},
	}

	log.Printf("user %s joined room %s", username, room)
	h.flush(deliveries)
}

// SendMessage appends the message to the history and broadcasts it to the
// room. Whitespace-only text is dropped with no mutation and no delivery.
func (h *Hub) SendMessage(connID, text, room string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	if room == "" {
		room = chat.DefaultRoom
	}

	h.mu.Lock()
	username, ok := h.registry.Lookup(connID)
	if !ok {
		username = chat.AnonymousName
	}
	msg := chat.Message{
		UserID:    connID,
		Username:  username,
		Message:   text,
		Timestamp: chat.Timestamp(h.now()),
		Room:      room,
	}
	h.history.Append(msg)
	h.mu.Unlock()

	log.Printf("%s sent a message in %s", username, room)
	h.flush([]delivery{{scope: toRoom, room: room, event: chat.EventNewMessage, payload: msg}})
}

// LeaveRoom removes a registered connection from the room and notifies
// the remaining members. Unregistered connections are ignored.
func (h *Hub) LeaveRoom(connID, room string) {
	if room == "" {
		room = chat.DefaultRoom
	}

	h.mu.Lock()
	username, registered := h.registry.Lookup(connID)
	var timestamp string
	if registered {
		h.rooms.Leave(room, connID)
		timestamp = chat.Timestamp(h.now())
	}
	h.mu.Unlock()

	if !registered {
		return
	}

	deliveries := []delivery{
		{scope: toRoom, room: room, event: chat.EventUserLeft, payload: chat.UserLeftPayload{
			UserID:   connID,
			Username: username,
			Room:     room,
		}},
		{scope: toRoom, room: room, event: chat.EventSystemMessage, payload: chat.SystemMessagePayload{
			Message:   fmt.Sprintf("%s left the chat", username),
			Timestamp: timestamp,
		}},
	}

	log.Printf("user %s left room %s", username, room)
	h.flush(deliveries)
}

// Typing relays the typing indicator to the room, excluding the sender.
// Nothing is stored.
func (h *Hub) Typing(connID, room string, isTyping bool) {
	if room == "" {
		room = chat.DefaultRoom
	}

	h.mu.Lock()
	username, ok := h.registry.Lookup(connID)
	if !ok {
		username = chat.AnonymousName
	}
	h.mu.Unlock()

	h.flush([]delivery{{scope: toRoomExcluding, room: room, connID: connID, event: chat.EventUserTyping, payload: chat.UserTypingPayload{
		UserID:   connID,
		Username: username,
		IsTyping: isTyping,
	}}})
}

// OnlineUsers returns the presence snapshot.
func (h *Hub) OnlineUsers() []chat.UserInfo {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.registry.Snapshot()
}

// Messages returns the most recent limit messages, oldest first.
func (h *Hub) Messages(limit int) []chat.Message {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.history.Tail(limit)
}

// RoomInfo describes a room; unknown rooms yield an empty member list.
func (h *Hub) RoomInfo(name string) chat.RoomInfo {
	h.mu.Lock()
	defer h.mu.Unlock()
	return chat.RoomInfo{Name: name, Users: h.rooms.Members(name)}
}

// RoomMembers returns the member connection ids of room. The transport
// uses it to resolve room-scoped deliveries.
func (h *Hub) RoomMembers(room string) []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.rooms.Members(room)
}

// RoomCounts returns the member count per known room.
func (h *Hub) RoomCounts() map[string]int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.rooms.Counts()
}

// OnlineCount returns the number of registered connections.
func (h *Hub) OnlineCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.registry.Count()
}
