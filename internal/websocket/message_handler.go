package websocket

import (
	"encoding/json"
	"log"

	"chathub/pkg/chat"
)

// handleFrame decodes one inbound envelope and dispatches it to the hub.
// Malformed frames and unknown events are logged and dropped; the
// connection stays up.
func (g *Gateway) handleFrame(c *Client, raw []byte) {
	var env chat.Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		log.Printf("malformed frame from %s: %v", c.id, err)
		return
	}

	switch env.Event {
	case chat.EventJoin:
		var p chat.JoinPayload
		if !decodePayload(c, env, &p) {
			return
		}
		g.hub.Join(c.id, p.Username, p.Room)

	case chat.EventSendMessage:
		var p chat.SendMessagePayload
		if !decodePayload(c, env, &p) {
			return
		}
		g.hub.SendMessage(c.id, p.Message, p.Room)

	case chat.EventLeaveRoom:
		var p chat.LeaveRoomPayload
		if !decodePayload(c, env, &p) {
			return
		}
		g.hub.LeaveRoom(c.id, p.Room)

	case chat.EventTyping:
		var p chat.TypingPayload
		if !decodePayload(c, env, &p) {
			return
		}
		g.hub.Typing(c.id, p.Room, p.IsTyping)

	default:
		log.Printf("unknown event %q from %s", env.Event, c.id)
	}
}

// decodePayload fills v from the envelope data. An absent payload leaves
// v zero-valued so event defaults apply.
func decodePayload(c *Client, env chat.Envelope, v any) bool {
	if len(env.Data) == 0 {
		return true
	}
	if err := json.Unmarshal(env.Data, v); err != nil {
		log.Printf("malformed %s payload from %s: %v", env.Event, c.id, err)
		return false
	}
	return true
}
