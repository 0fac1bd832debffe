package network

import (
	"context"
	"log"
	"sync/atomic"
)

// broadcastBuffer is how many frames may queue ahead of the hub loop before new ones drop
const broadcastBuffer = 64

// Hub maintains the set of active clients and broadcasts frames to them
// All client bookkeeping happens on the Run goroutine
type Hub struct {
	clients    map[*Client]struct{}
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	done       chan struct{}

	// last frame, replayed to clients as they connect
	last  []byte
	count atomic.Int32
}

// NewHub initializes a new feed hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		broadcast:  make(chan []byte, broadcastBuffer),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// Run handles connections and broadcasts until ctx is done
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				delete(h.clients, c)
				close(c.send)
			}
			h.count.Store(0)
			return

		case c := <-h.register:
			h.clients[c] = struct{}{}
			h.count.Store(int32(len(h.clients)))
			if h.last != nil {
				c.send <- h.last
			}
			log.Printf("feed: client connected (%d)", len(h.clients))

		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
				h.count.Store(int32(len(h.clients)))
				log.Printf("feed: client disconnected (%d)", len(h.clients))
			}

		case msg := <-h.broadcast:
			h.last = msg
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					// Slow client
					delete(h.clients, c)
					close(c.send)
					log.Printf("feed: dropped slow client")
				}
			}
			h.count.Store(int32(len(h.clients)))
		}
	}
}

// join registers c, false if the hub stopped
func (h *Hub) join(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

// leave unregisters c, no-op once the hub stopped
func (h *Hub) leave(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Broadcast queues msg for every client without blocking, returns false if the queue is full
func (h *Hub) Broadcast(msg []byte) bool {
	select {
	case h.broadcast <- msg:
		return true
	default:
		return false
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	return int(h.count.Load())
}
