package hub

import "chathub/pkg/chat"

// DefaultHistorySize bounds the message log when no explicit size is
// configured.
const DefaultHistorySize = 1000

// MessageLog is a bounded append-only history of delivered messages.
// Once the bound is reached the oldest entry is evicted per append. The
// Hub serializes all access.
type MessageLog struct {
	entries []chat.Message
	max     int
}

func NewMessageLog(max int) *MessageLog {
	if max <= 0 {
		max = DefaultHistorySize
	}
	return &MessageLog{max: max}
}

// Append stores msg, evicting the oldest entry if the log is full.
func (l *MessageLog) Append(msg chat.Message) {
	if len(l.entries) == l.max {
		copy(l.entries, l.entries[1:])
		l.entries[len(l.entries)-1] = msg
		return
	}
	l.entries = append(l.entries, msg)
}

// Tail returns the most recent limit messages, oldest first. A limit of
// zero or less returns an empty slice; a limit beyond the log length
// returns everything.
func (l *MessageLog) Tail(limit int) []chat.Message {
	if limit <= 0 {
		return []chat.Message{}
	}
	if limit > len(l.entries) {
		limit = len(l.entries)
	}
	tail := make([]chat.Message, limit)
	copy(tail, l.entries[len(l.entries)-limit:])
	return tail
}

func (l *MessageLog) Len() int {
	return len(l.entries)
}
