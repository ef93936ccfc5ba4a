package hostui

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"scan-bridge/internal/pkg/errs"
	"scan-bridge/internal/usecase"

	"github.com/gorilla/websocket"
)

const writeTimeout = 5 * time.Second

type Event struct {
	Type  string    `json:"type"`
	State any       `json:"state,omitempty"`
	Cause string    `json:"cause,omitempty"`
	Time  time.Time `json:"timestamp"`
}

const (
	EventState = "state"
	EventAck   = "ack"
)

type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) writeJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return c.conn.WriteJSON(v)
}

// Hub fans host UI events out to every connected shell socket.
type Hub struct {
	logger *slog.Logger

	mutex   sync.RWMutex
	clients map[*websocket.Conn]*client
}

func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		logger:  logger.With("component", "host_hub"),
		clients: make(map[*websocket.Conn]*client),
	}
}

func (h *Hub) AddConnection(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.clients[conn] = &client{conn: conn}
	h.logger.Info("host ui connected", "connections", len(h.clients))
}

func (h *Hub) RemoveConnection(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	delete(h.clients, conn)
	h.logger.Info("host ui disconnected", "connections", len(h.clients))
}

func (h *Hub) Count() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

// Send writes to one connection, serialized with broadcasts.
func (h *Hub) Send(conn *websocket.Conn, v any) error {
	h.mutex.RLock()
	c, ok := h.clients[conn]
	h.mutex.RUnlock()
	if !ok {
		return conn.WriteJSON(v)
	}
	return c.writeJSON(v)
}

// Broadcast returns how many connections received the event.
func (h *Hub) Broadcast(ev Event) int {
	h.mutex.RLock()
	targets := make([]*client, 0, len(h.clients))
	for _, c := range h.clients {
		targets = append(targets, c)
	}
	h.mutex.RUnlock()

	delivered := 0
	for _, c := range targets {
		if err := c.writeJSON(ev); err != nil {
			h.logger.Warn("error broadcasting to host ui", "error", err)
			h.RemoveConnection(c.conn)
			_ = c.conn.Close()
			continue
		}
		delivered++
	}
	return delivered
}

// Acknowledge asks the host UI to play the scan chime.
func (h *Hub) Acknowledge(ctx context.Context, cause usecase.AckCause) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if h.Broadcast(Event{Type: EventAck, Cause: string(cause), Time: time.Now()}) == 0 {
		return errs.ErrNoHostListener
	}
	return nil
}

var _ usecase.Acknowledger = (*Hub)(nil)
