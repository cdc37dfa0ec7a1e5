package handlers

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

// WebSocketHub tracks connected query clients and broadcasts dataset
// lifecycle events to all of them.
type WebSocketHub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// ReloadEvent is broadcast whenever the served dataset is swapped.
type ReloadEvent struct {
	Type     string    `json:"type"` // always "dataset_reloaded"
	Persons  int       `json:"persons"`
	LoadedAt time.Time `json:"loaded_at"`
}

// WSQuery is one query frame sent by a WebSocket client.
type WSQuery struct {
	Start  int64 `json:"start"`
	Finish int64 `json:"finish"`
}

// NewWebSocketHub creates an empty hub.
func NewWebSocketHub() *WebSocketHub {
	return &WebSocketHub{clients: make(map[*websocket.Conn]struct{})}
}

// ClientCount returns the number of connected clients.
func (h *WebSocketHub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Broadcast sends an event to every connected client. Clients that
// fail the write are closed and dropped.
func (h *WebSocketHub) Broadcast(event interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := wsjson.Write(ctx, conn, event)
		cancel()
		if err != nil {
			log.Printf("handlers: dropping websocket client: %v", err)
			_ = conn.Close(websocket.StatusPolicyViolation, "write failed")
			delete(h.clients, conn)
		}
	}
}

func (h *WebSocketHub) add(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = struct{}{}
	count := len(h.clients)
	h.mu.Unlock()
	log.Printf("handlers: websocket client connected (total: %d)", count)
}

func (h *WebSocketHub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	count := len(h.clients)
	h.mu.Unlock()
	log.Printf("handlers: websocket client disconnected (total: %d)", count)
}

// WSHandler serves interactive path queries over a WebSocket
// connection: the client sends WSQuery frames and receives the same
// payloads as GET /api/path. Connected clients also receive hub
// broadcasts such as ReloadEvent.
type WSHandler struct {
	source Source
	hub    *WebSocketHub
}

// NewWSHandler creates a WebSocket query handler registered on hub.
func NewWSHandler(source Source, hub *WebSocketHub) *WSHandler {
	return &WSHandler{source: source, hub: hub}
}

// ServeHTTP handles GET /ws.
func (h *WSHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		log.Printf("handlers: websocket accept: %v", err)
		return
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	h.hub.add(conn)
	defer h.hub.remove(conn)

	ctx := r.Context()
	for {
		var q WSQuery
		if err := wsjson.Read(ctx, conn, &q); err != nil {
			// Client went away or sent a broken frame.
			return
		}

		body, _ := resolvePath(ctx, h.source, q.Start, q.Finish)
		if err := wsjson.Write(ctx, conn, body); err != nil {
			return
		}
	}
}
