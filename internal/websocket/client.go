// internal/websocket/client.go
package websocket

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second    // Time allowed to write a message to the peer.
	pongWait       = 60 * time.Second    // Time allowed to read the next pong message from the peer.
	pingPeriod     = (pongWait * 9) / 10 // Send pings to peer with this period. Must be less than pongWait.
	maxMessageSize = 512                 // Maximum message size allowed from peer.
	sendBufferSize = 256
)

// envelope is the wire format for both directions: a named event plus its
// payload.
type envelope struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// historicalRequest is the single inbound message observers may send.
type historicalRequest struct {
	Hours int `json:"hours"`
}

// Client is a middleman between one websocket connection and the hub. It
// implements Observer.
type Client struct {
	hub  *Hub
	log  *slog.Logger
	conn *websocket.Conn
	id   string
	send chan []byte // Buffered channel of outbound messages.
}

func NewClient(hub *Hub, conn *websocket.Conn, log *slog.Logger) *Client {
	return &Client{
		hub:  hub,
		log:  log,
		conn: conn,
		id:   uuid.NewString(),
		send: make(chan []byte, sendBufferSize),
	}
}

func (c *Client) ID() string { return c.id }

// Send marshals an event envelope onto the client's outbound buffer. A full
// buffer means the peer is stalled or gone; the send fails without blocking.
func (c *Client) Send(event string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", event, err)
	}
	msg, err := json.Marshal(envelope{Event: event, Payload: raw})
	if err != nil {
		return fmt.Errorf("marshal %s envelope: %w", event, err)
	}
	select {
	case c.send <- msg:
		return nil
	default:
		return fmt.Errorf("send %s to %s: %w", event, c.id, ErrDeliveryFailed)
	}
}

// ReadPump pumps inbound messages from the websocket connection to the hub.
// It owns unregistration: when the read loop exits for any reason the client
// is removed from the hub and the connection closed.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error { c.conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })
	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.log.Warn("websocket read error", "id", c.id, "err", err)
			}
			break
		}

		var env envelope
		if err := json.Unmarshal(message, &env); err != nil {
			c.log.Warn("invalid message from observer", "id", c.id, "err", err)
			continue
		}
		switch env.Event {
		case "historical-request":
			var req historicalRequest
			if len(env.Payload) > 0 {
				if err := json.Unmarshal(env.Payload, &req); err != nil {
					c.log.Warn("invalid historical request", "id", c.id, "err", err)
					continue
				}
			}
			go c.hub.HandleHistoricalRequest(c, req.Hours)
		default:
			c.log.Debug("ignoring unknown event", "id", c.id, "event", env.Event)
		}
	}
}

// WritePump pumps messages from the send buffer to the websocket connection
// and keeps the connection alive with pings.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				c.log.Warn("websocket write error", "id", c.id, "err", err)
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
