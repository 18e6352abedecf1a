// internal/websocket/client.go
package websocket

import (
	"context"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4 * 1024
)

// ClientAuth holds the verified identity behind a feed connection.
type ClientAuth struct {
	AdminID int64
	JTI     string
	Email   string
	Role    string
}

// Client is one admin feed connection. The feed is push-only; inbound frames
// are read solely to service pings and detect closure.
type Client struct {
	hub     *Hub
	conn    *websocket.Conn
	send    chan []byte
	adminID int64
	jti     string
	email   string
	role    string

	closeOnce sync.Once
	ctx       context.Context
	cancel    context.CancelFunc
}

func NewClient(hub *Hub, conn *websocket.Conn, auth *ClientAuth) *Client {
	ctx, cancel := context.WithCancel(context.Background())

	return &Client{
		hub:     hub,
		conn:    conn,
		send:    make(chan []byte, 64),
		adminID: auth.AdminID,
		jti:     auth.JTI,
		email:   auth.Email,
		role:    auth.Role,
		ctx:     ctx,
		cancel:  cancel,
	}
}

func (c *Client) AdminID() int64 { return c.adminID }

// ReadPump discards inbound frames and tears the client down on error.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.Warn("websocket read error",
					zap.Int64("admin_id", c.adminID), zap.Error(err))
			}
			return
		}
	}
}

// WritePump flushes queued events and keeps the connection alive with pings.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case <-c.ctx.Done():
			return
		case message := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// SendEvent queues an event for this client. A full buffer means the client
// has stopped draining; it gets disconnected.
func (c *Client) SendEvent(event *Event) {
	data, err := event.ToJSON()
	if err != nil {
		c.hub.logger.Error("failed to marshal feed event", zap.Error(err))
		return
	}

	select {
	case c.send <- data:
	case <-c.ctx.Done():
	default:
		c.Close()
		select {
		case c.hub.unregister <- c:
		default:
		}
	}
}

// Close signals both pumps to stop. The send channel is never closed so
// concurrent SendEvent calls stay safe; they bail out on the cancelled
// context instead.
func (c *Client) Close() {
	c.closeOnce.Do(c.cancel)
}
