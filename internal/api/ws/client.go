package ws

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var errClientClosed = errors.New("client connection closed")

const sendBuffer = 32

// Client is one websocket connection. Outbound events go through a buffered
// channel drained by a single write pump, so delivery order per connection
// matches send order.
type Client struct {
	id   string
	conn *websocket.Conn

	send chan Envelope
	done chan struct{}
	once sync.Once
}

func newClient(conn *websocket.Conn) *Client {
	return &Client{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan Envelope, sendBuffer),
		done: make(chan struct{}),
	}
}

func (c *Client) ID() string { return c.id }

// Send queues an event for delivery. It fails once the connection is closed.
func (c *Client) Send(event string, data any) error {
	select {
	case <-c.done:
		return errClientClosed
	case c.send <- Envelope{Event: event, Data: data}:
		return nil
	}
}

func (c *Client) close() {
	c.once.Do(func() {
		close(c.done)
		_ = c.conn.Close()
	})
}

func (c *Client) writePump() {
	for {
		select {
		case <-c.done:
			return
		case env := <-c.send:
			if err := c.conn.WriteJSON(env); err != nil {
				c.close()
				return
			}
		}
	}
}
