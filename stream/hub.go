// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/ik5/ppgbeat/heart"
)

const writeWait = 200 * time.Millisecond

// Hub tracks websocket clients and broadcasts to all of them. A client
// that cannot keep up within the write deadline is dropped.
type Hub struct {
	upgrader websocket.Upgrader

	mu    sync.Mutex
	conns map[*websocket.Conn]bool

	// writeMu serializes broadcasts; a websocket.Conn allows one writer.
	writeMu sync.Mutex

	sent atomic.Int64
}

func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		conns: make(map[*websocket.Conn]bool),
	}
}

// ServeHTTP upgrades the request and keeps the client registered until it
// disconnects. Incoming messages are discarded.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	h.add(conn)
	defer func() {
		h.remove(conn)
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Len reports the number of connected clients.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// Sent reports how many messages were delivered across all clients.
func (h *Hub) Sent() int64 { return h.sent.Load() }

// Broadcast sends r as a JSON text frame.
func (h *Hub) Broadcast(r heart.Reading) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encoding reading: %w", err)
	}
	h.BroadcastText(data)
	return nil
}

func (h *Hub) BroadcastText(b []byte)   { h.broadcast(websocket.TextMessage, b) }
func (h *Hub) BroadcastBinary(b []byte) { h.broadcast(websocket.BinaryMessage, b) }

func (h *Hub) broadcast(kind int, b []byte) {
	h.writeMu.Lock()
	defer h.writeMu.Unlock()

	for _, c := range h.snapshot() {
		_ = c.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.WriteMessage(kind, b); err != nil {
			_ = c.Close()
			h.remove(c)
			continue
		}
		h.sent.Add(1)
	}
}

func (h *Hub) add(c *websocket.Conn) {
	h.mu.Lock()
	h.conns[c] = true
	h.mu.Unlock()
}

func (h *Hub) remove(c *websocket.Conn) {
	h.mu.Lock()
	delete(h.conns, c)
	h.mu.Unlock()
}

func (h *Hub) snapshot() []*websocket.Conn {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients := make([]*websocket.Conn, 0, len(h.conns))
	for c := range h.conns {
		clients = append(clients, c)
	}
	return clients
}
