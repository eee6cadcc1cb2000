package chat

import "encoding/json"

// Client -> server event names.
const (
	EventJoin        = "join"
	EventSendMessage = "send_message"
	EventLeaveRoom   = "leave_room"
	EventTyping      = "typing"
)

// Server -> client event names.
const (
	EventNewMessage    = "new_message"
	EventUserJoined    = "user_joined"
	EventUserLeft      = "user_left"
	EventSystemMessage = "system_message"
	EventOnlineUsers   = "online_users"
	EventUserTyping    = "user_typing"
)

// Envelope wraps every frame in both directions: an event name plus the
// event's payload. Field names are the wire contract with clients.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type JoinPayload struct {
	Username string `json:"username"`
	Room     string `json:"room"`
}

type SendMessagePayload struct {
	Message string `json:"message"`
	Room    string `json:"room"`
}

type LeaveRoomPayload struct {
	Room string `json:"room"`
}

type TypingPayload struct {
	Room     string `json:"room"`
	IsTyping bool   `json:"is_typing"`
}

type UserJoinedPayload struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Room     string `json:"room"`
}

// UserLeftPayload is emitted both room-scoped (leave_room) and globally on
// disconnect; the global form carries no room.
type UserLeftPayload struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Room     string `json:"room,omitempty"`
}

type SystemMessagePayload struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

type OnlineUsersPayload struct {
	Users []UserInfo `json:"users"`
}

type UserTypingPayload struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	IsTyping bool   `json:"is_typing"`
}
