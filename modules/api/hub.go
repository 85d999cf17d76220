package api

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
)

const (
	// feedWriteWait bounds a single write to a feed.
	feedWriteWait = 10 * time.Second

	// feedBufferSize is how many updates a feed may fall behind before
	// it is dropped.
	feedBufferSize = 16
)

// feedConn is the part of a websocket connection the hub writes to.
type feedConn interface {
	WriteMessage(messageType int, data []byte) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

// feedClient is one open cart feed. Each client is written by its own
// pump so a stalled connection only delays itself.
type feedClient struct {
	id        string
	sessionID string
	conn      feedConn
	send      chan []byte
}

// writePump writes queued updates until the hub closes send.
func (c *feedClient) writePump() {
	for data := range c.send {
		if err := c.conn.SetWriteDeadline(time.Now().Add(feedWriteWait)); err != nil {
			log.Printf("[api] Failed to set write deadline for cart feed %s: %v", c.id, err)
		}
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("[api] Failed to write cart feed %s: %v", c.id, err)
			_ = c.conn.Close()
			return
		}
	}
}

type feedMessage struct {
	sessionID string
	payload   any
}

// CartHub fans cart changes out to the websocket feeds of each session.
type CartHub struct {
	clients    map[string]*feedClient         // clientID -> client
	sessions   map[string]map[string]struct{} // sessionID -> clientIDs
	register   chan *feedClient
	unregister chan *feedClient
	send       chan feedMessage
	done       chan struct{}
	mu         sync.RWMutex
}

// NewCartHub creates a new CartHub.
func NewCartHub() *CartHub {
	return &CartHub{
		clients:    make(map[string]*feedClient),
		sessions:   make(map[string]map[string]struct{}),
		register:   make(chan *feedClient),
		unregister: make(chan *feedClient),
		send:       make(chan feedMessage, 256),
		done:       make(chan struct{}),
	}
}

// Run processes registrations and messages until ctx is cancelled.
func (h *CartHub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			close(h.done)
			return
		case c := <-h.register:
			h.handleRegister(c)
		case c := <-h.unregister:
			h.handleUnregister(c)
		case msg := <-h.send:
			h.handleSend(msg)
		}
	}
}

// Wait blocks until the hub has stopped.
func (h *CartHub) Wait() {
	<-h.done
}

// Register adds a feed for a session.
func (h *CartHub) Register(c *feedClient) {
	select {
	case h.register <- c:
	case <-h.done:
	}
}

// Unregister removes a feed.
func (h *CartHub) Unregister(c *feedClient) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Send queues payload for every feed of the session. Messages are dropped
// when the queue is full.
func (h *CartHub) Send(sessionID string, payload any) {
	select {
	case h.send <- feedMessage{sessionID: sessionID, payload: payload}:
	default:
		log.Printf("[api] Cart feed queue full, dropping update for session %s", sessionID)
	}
}

// ClientCount returns the number of open feeds.
func (h *CartHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *CartHub) handleRegister(c *feedClient) {
	h.mu.Lock()
	defer h.mu.Unlock()

	c.send = make(chan []byte, feedBufferSize)
	go c.writePump()

	h.clients[c.id] = c
	if h.sessions[c.sessionID] == nil {
		h.sessions[c.sessionID] = make(map[string]struct{})
	}
	h.sessions[c.sessionID][c.id] = struct{}{}
}

func (h *CartHub) handleUnregister(c *feedClient) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.remove(c.id)
}

// remove forgets a client and stops its pump. Callers hold h.mu.
func (h *CartHub) remove(id string) {
	c, ok := h.clients[id]
	if !ok {
		return
	}
	close(c.send)
	delete(h.clients, id)
	delete(h.sessions[c.sessionID], id)
	if len(h.sessions[c.sessionID]) == 0 {
		delete(h.sessions, c.sessionID)
	}
}

func (h *CartHub) handleSend(msg feedMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ids, ok := h.sessions[msg.sessionID]
	if !ok {
		return
	}

	data, err := json.Marshal(msg.payload)
	if err != nil {
		log.Printf("[api] Failed to marshal cart feed message: %v", err)
		return
	}
	for id := range ids {
		c := h.clients[id]
		select {
		case c.send <- data:
		default:
			log.Printf("[api] Cart feed %s is too slow, disconnecting", id)
			h.remove(id)
			_ = c.conn.Close()
		}
	}
}

func (h *CartHub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, c := range h.clients {
		h.remove(id)
		_ = c.conn.Close()
	}
}
