package chat

import "time"

// TimeFormat is the wall-clock timestamp format used on every event and
// stored message. Second resolution, lexicographically sortable.
const TimeFormat = "2006-01-02 15:04:05"

// DefaultRoom is joined when a client does not name a room.
const DefaultRoom = "general"

// AnonymousName is substituted when a sender is not in the registry.
const AnonymousName = "Anonymous"

// Timestamp formats t for the wire.
func Timestamp(t time.Time) string {
	return t.Format(TimeFormat)
}

// Message is one chat message as stored in the history log and broadcast
// as a new_message event. Immutable once created.
type Message struct {
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Room      string `json:"room"`
}

// UserInfo is one entry of the presence snapshot.
type UserInfo struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// RoomInfo describes a room and its current member connection ids.
type RoomInfo struct {
	Name  string   `json:"name"`
	Users []string `json:"users"`
}
