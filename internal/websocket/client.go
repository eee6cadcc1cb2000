package websocket

import (
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Outbound frame buffer per connection.
	sendBufferSize = 256
)

// Client is one live WebSocket connection. The hub never sees it; it only
// knows the connection id.
type Client struct {
	id      string
	conn    *websocket.Conn
	gateway *Gateway

	send chan []byte
	done chan struct{}
	once sync.Once
}

func newClient(gateway *Gateway, conn *websocket.Conn, id string) *Client {
	if conn != nil {
		conn.SetReadLimit(gateway.maxMessageSize)
	}
	return &Client{
		id:      id,
		conn:    conn,
		gateway: gateway,
		send:    make(chan []byte, sendBufferSize),
		done:    make(chan struct{}),
	}
}

// ID returns the opaque connection id assigned at upgrade time.
func (c *Client) ID() string {
	return c.id
}

// enqueue hands a frame to the write pump without blocking. Frames for a
// closed or slow connection are dropped.
func (c *Client) enqueue(frame []byte) bool {
	select {
	case <-c.done:
		return false
	default:
	}
	select {
	case c.send <- frame:
		return true
	default:
		log.Printf("dropping frame for slow client %s", c.id)
		return false
	}
}

func (c *Client) close() {
	c.once.Do(func() { close(c.done) })
}

// readPump reads frames off the connection and forwards them to the
// gateway until the peer goes away.
func (c *Client) readPump() {
	defer func() {
		c.gateway.drop(c)
		c.conn.Close()
	}()

	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		log.Printf("read deadline for %s: %v", c.id, err)
		return
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("read error from %s: %v", c.id, err)
			}
			return
		}
		c.gateway.handleFrame(c, raw)
	}
}

// writePump writes queued frames and keepalive pings until the client is
// dropped.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case frame := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				log.Printf("write error to %s: %v", c.id, err)
				return
			}
		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-c.done:
			_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}
	}
}
