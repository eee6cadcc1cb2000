package client

import (
	"encoding/json"
	"fmt"
	"strings"

	"chathub/pkg/chat"
)

// FormatEvent renders an inbound envelope as a single display line.
// Unknown or undecodable events yield an empty string.
func FormatEvent(env chat.Envelope) string {
	switch env.Event {
	case chat.EventNewMessage:
		var msg chat.Message
		if json.Unmarshal(env.Data, &msg) != nil {
			return ""
		}
		return fmt.Sprintf("[%s] %s: %s", msg.Timestamp, msg.Username, msg.Message)

	case chat.EventSystemMessage:
		var p chat.SystemMessagePayload
		if json.Unmarshal(env.Data, &p) != nil {
			return ""
		}
		return fmt.Sprintf("[%s] * %s", p.Timestamp, p.Message)

	case chat.EventUserJoined:
		var p chat.UserJoinedPayload
		if json.Unmarshal(env.Data, &p) != nil {
			return ""
		}
		return fmt.Sprintf("* %s joined %s", p.Username, p.Room)

	case chat.EventUserLeft:
		var p chat.UserLeftPayload
		if json.Unmarshal(env.Data, &p) != nil {
			return ""
		}
		if p.Room == "" {
			return fmt.Sprintf("* %s went offline", p.Username)
		}
		return fmt.Sprintf("* %s left %s", p.Username, p.Room)

	case chat.EventUserTyping:
		var p chat.UserTypingPayload
		if json.Unmarshal(env.Data, &p) != nil {
			return ""
		}
		if !p.IsTyping {
			return ""
		}
		return fmt.Sprintf("* %s is typing...", p.Username)

	case chat.EventOnlineUsers:
		var p chat.OnlineUsersPayload
		if json.Unmarshal(env.Data, &p) != nil {
			return ""
		}
		names := make([]string, 0, len(p.Users))
		for _, u := range p.Users {
			names = append(names, u.Username)
		}
		return fmt.Sprintf("* online: %s", strings.Join(names, ", "))
	}

	return ""
}
