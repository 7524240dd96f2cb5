package websocket

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/admybrand/dashboard-backend/internal/configstore"
	"github.com/admybrand/dashboard-backend/internal/models"
	"github.com/admybrand/dashboard-backend/pkg/debug"
	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Browsers only send control frames on this socket
	maxMessageSize = 4 * 1024

	sendBufferSize = 16
)

// Handler streams config snapshots to dashboard browsers
type Handler struct {
	store       *configstore.Store
	upgrader    websocket.Upgrader
	clients     map[*Client]struct{}
	mu          sync.RWMutex
	unsubscribe func()
}

// Client represents a connected browser
type Client struct {
	handler *Handler
	conn    *websocket.Conn
	send    chan *Message
}

// NewHandler creates a handler subscribed to store. Connections are accepted
// from allowedOrigin, from any origin when it is "*", and from clients that
// send no Origin header.
func NewHandler(store *configstore.Store, allowedOrigin string) *Handler {
	h := &Handler{
		store:   store,
		clients: make(map[*Client]struct{}),
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || allowedOrigin == "*" || origin == allowedOrigin
		},
	}
	h.unsubscribe = store.Subscribe(func(cfg models.AppConfig) {
		h.Broadcast(newConfigMessage(cfg))
	})
	return h
}

// ServeWS handles GET /ws/config
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		debug.Error("failed to upgrade connection: %v", err)
		return
	}

	client := &Client{
		handler: h,
		conn:    conn,
		send:    make(chan *Message, sendBufferSize),
	}
	// Register before taking the first snapshot so changes committed after it
	// are broadcast to this client too.
	h.mu.Lock()
	h.clients[client] = struct{}{}
	client.send <- newConfigMessage(h.store.Config())
	h.mu.Unlock()
	debug.Debug("Config stream client connected from %s", r.RemoteAddr)

	go client.writePump()
	go client.readPump()
}

// readPump only services control frames and notices disconnects
func (c *Client) readPump() {
	defer func() {
		c.handler.unregisterClient(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				debug.Error("unexpected close error: %v", err)
			}
			return
		}
	}
}

// writePump pumps messages from the handler to the WebSocket connection
func (c *Client) writePump() {
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
				// Channel was closed
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			data, err := json.Marshal(message)
			if err != nil {
				debug.Error("failed to marshal message: %v", err)
				continue
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
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

// Broadcast sends a message to all connected clients
func (h *Handler) Broadcast(msg *Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		client.queue(msg)
	}
}

// queue never blocks. Every message is a full snapshot, so when the buffer is
// full the oldest pending one is discarded to make room for msg.
func (c *Client) queue(msg *Message) {
	for {
		select {
		case c.send <- msg:
			return
		default:
		}

		select {
		case <-c.send:
			debug.Warning("Config stream client is slow, discarding a stale snapshot")
		default:
		}
	}
}

// ClientCount returns the number of connected clients
func (h *Handler) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close stops listening to the store and disconnects every client
func (h *Handler) Close() {
	h.unsubscribe()

	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		delete(h.clients, client)
		close(client.send)
	}
}

// unregisterClient removes a client from the handler
func (h *Handler) unregisterClient(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
	debug.Debug("Config stream client disconnected")
}
