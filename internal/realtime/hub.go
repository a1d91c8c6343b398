// Package realtime keeps the live websocket sessions of store dashboards and
// delivers events to them by session id.
package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var (
	ErrSessionNotFound = errors.New("realtime session not found")
	ErrSessionBusy     = errors.New("realtime session send buffer is full")
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBuffer     = 256
)

// Event is the frame written to a session.
type Event struct {
	Name string `json:"event"`
	Data any    `json:"data"`
}

type Client struct {
	hub       *Hub
	conn      *websocket.Conn
	send      chan []byte
	sessionID string
	storeID   uint
	onClose   func(sessionID string)
}

func (c *Client) SessionID() string {
	return c.sessionID
}

type Hub struct {
	clients      map[string]*Client
	clientsMutex sync.RWMutex
	register     chan *Client
	unregister   chan *Client
	done         chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// Run serves registrations until ctx is done, then closes every session.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case client := <-h.register:
			h.clientsMutex.Lock()
			h.clients[client.sessionID] = client
			h.clientsMutex.Unlock()
		case client := <-h.unregister:
			h.clientsMutex.Lock()
			if _, ok := h.clients[client.sessionID]; ok {
				delete(h.clients, client.sessionID)
				close(client.send)
			}
			h.clientsMutex.Unlock()
		case <-ctx.Done():
			h.clientsMutex.Lock()
			for id, client := range h.clients {
				delete(h.clients, id)
				close(client.send)
			}
			h.clientsMutex.Unlock()

			return
		}
	}
}

// Connect makes conn a new session of storeID. join runs first with the new
// session id; when it fails the connection is closed and nothing is
// registered. Only then do the pumps start, so onClose always runs after a
// successful join.
func (h *Hub) Connect(
	conn *websocket.Conn,
	storeID uint,
	join func(sessionID string) error,
	onClose func(sessionID string),
) (*Client, error) {
	client := &Client{
		hub:       h,
		conn:      conn,
		send:      make(chan []byte, sendBuffer),
		sessionID: uuid.NewString(),
		storeID:   storeID,
		onClose:   onClose,
	}

	if join != nil {
		if err := join(client.sessionID); err != nil {
			_ = conn.Close()
			return nil, err
		}
	}

	select {
	case h.register <- client:
	case <-h.done:
		close(client.send)
	}

	go client.writePump()
	go client.readPump()

	return client, nil
}

// Emit queues event for one session. It never blocks: a session that is
// gone or not draining its buffer is reported as an error and skipped.
func (h *Hub) Emit(sessionID, event string, payload any) error {
	message, err := json.Marshal(Event{Name: event, Data: payload})
	if err != nil {
		return err
	}

	h.clientsMutex.RLock()
	defer h.clientsMutex.RUnlock()

	client, ok := h.clients[sessionID]
	if !ok {
		return ErrSessionNotFound
	}

	select {
	case client.send <- message:
		return nil
	default:
		return ErrSessionBusy
	}
}

func (h *Hub) Sessions() int {
	h.clientsMutex.RLock()
	defer h.clientsMutex.RUnlock()

	return len(h.clients)
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			if _, err = w.Write(message); err != nil {
				return
			}
			if err = w.Close(); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump only watches for the connection to end; dashboards do not send
// anything the server acts on.
func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
		if c.onClose != nil {
			c.onClose(c.sessionID)
		}
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				zap.L().Warn("realtime session closed unexpectedly",
					zap.String("session_id", c.sessionID),
					zap.Uint("store_id", c.storeID),
					zap.Error(err))
			}

			return
		}
	}
}
