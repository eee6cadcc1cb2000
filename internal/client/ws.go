// Package client implements a minimal terminal chat client speaking the
// server's event envelope protocol.
package client

import (
	"encoding/json"
	"net/url"

	"chathub/pkg/chat"

	"github.com/gorilla/websocket"
)

type WSClient struct {
	conn *websocket.Conn
}

// Dial connects to the chat server's /ws endpoint at host.
func Dial(host string) (*WSClient, error) {
	u := url.URL{Scheme: "ws", Host: host, Path: "/ws"}

	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		return nil, err
	}

	return &WSClient{conn: conn}, nil
}

func (c *WSClient) send(event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	frame, err := json.Marshal(chat.Envelope{Event: event, Data: data})
	if err != nil {
		return err
	}
	return c.conn.WriteMessage(websocket.TextMessage, frame)
}

func (c *WSClient) Join(username, room string) error {
	return c.send(chat.EventJoin, chat.JoinPayload{Username: username, Room: room})
}

func (c *WSClient) SendMessage(text, room string) error {
	return c.send(chat.EventSendMessage, chat.SendMessagePayload{Message: text, Room: room})
}

func (c *WSClient) LeaveRoom(room string) error {
	return c.send(chat.EventLeaveRoom, chat.LeaveRoomPayload{Room: room})
}

func (c *WSClient) Typing(room string, isTyping bool) error {
	return c.send(chat.EventTyping, chat.TypingPayload{Room: room, IsTyping: isTyping})
}

// Listen delivers every inbound envelope to handler until the connection
// closes, then returns the read error.
func (c *WSClient) Listen(handler func(chat.Envelope)) error {
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return err
		}
		var env chat.Envelope
		if err := json.Unmarshal(data, &env); err != nil {
			continue
		}
		handler(env)
	}
}

func (c *WSClient) Close() error {
	return c.conn.Close()
}
