package network

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/geometry-fighter/engine"
	"github.com/lixenwraith/geometry-fighter/status"
)

// Name is the service name of the spectator feed
const Name = "feed"

const shutdownTimeout = 2 * time.Second

// Feed serves HUD frames to websocket spectators on /hud and counters on /stats
// It implements engine.Display and service.Service
type Feed struct {
	addr     string
	hub      *Hub
	upgrader websocket.Upgrader
	stats    *status.Registry

	listener net.Listener
	server   *http.Server
	cancel   context.CancelFunc
	wg       sync.WaitGroup

	// Tick goroutine only
	last    Frame
	hasLast bool
	seq     uint64
}

// NewFeed creates a feed that will listen on addr
func NewFeed(addr string) *Feed {
	return &Feed{
		addr: addr,
		hub:  NewHub(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Spectator feed is read-only
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

func (f *Feed) Name() string           { return Name }
func (f *Feed) Dependencies() []string { return nil }
func (f *Feed) Optional() bool         { return true }

// Init binds the listen address
func (f *Feed) Init() error {
	ln, err := net.Listen("tcp", f.addr)
	if err != nil {
		return fmt.Errorf("feed listen %s: %w", f.addr, err)
	}
	f.listener = ln
	mux := http.NewServeMux()
	mux.HandleFunc("/hud", f.serveWS)
	mux.HandleFunc("/stats", f.serveStats)
	f.server = &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	return nil
}

// Start runs the hub and the HTTP server until Stop or ctx is done
func (f *Feed) Start(ctx context.Context) error {
	if f.listener == nil {
		return errors.New("feed not initialized")
	}
	ctx, f.cancel = context.WithCancel(ctx)

	f.wg.Add(2)
	go func() {
		defer f.wg.Done()
		f.hub.Run(ctx)
	}()
	go func() {
		defer f.wg.Done()
		if err := f.server.Serve(f.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("feed: serve: %v", err)
		}
	}()
	log.Printf("feed: listening on %s", f.listener.Addr())
	return nil
}

// Stop shuts the server down and disconnects all spectators, idempotent
func (f *Feed) Stop() error {
	if f.cancel == nil {
		if f.listener != nil {
			f.listener.Close()
			f.listener = nil
		}
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err := f.server.Shutdown(ctx)
	f.cancel()
	f.cancel = nil
	f.wg.Wait()
	if err != nil {
		return fmt.Errorf("feed shutdown: %w", err)
	}
	return nil
}

// SetStats exposes r on /stats, call before Start
func (f *Feed) SetStats(r *status.Registry) {
	f.stats = r
}

// Addr returns the bound address, empty before Init
func (f *Feed) Addr() string {
	if f.listener == nil {
		return ""
	}
	return f.listener.Addr().String()
}

// Clients returns the number of connected spectators
func (f *Feed) Clients() int {
	return f.hub.ClientCount()
}

// UpdateHUD implements engine.Display, only changed snapshots are sent and the call never blocks
func (f *Feed) UpdateHUD(h engine.HUD) {
	frame := FrameFromHUD(h)
	if f.hasLast && frame == f.last {
		return
	}
	f.last, f.hasLast = frame, true

	f.seq++
	frame.Seq = f.seq
	data, err := frame.Encode()
	if err != nil {
		log.Printf("feed: %v", err)
		return
	}
	if !f.hub.Broadcast(data) {
		log.Printf("feed: broadcast queue full, frame %d dropped", frame.Seq)
	}
}

func (f *Feed) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := f.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("feed: upgrade: %v", err)
		return
	}
	c := NewClient(f.hub, conn)
	if !f.hub.join(c) {
		conn.Close()
		return
	}
	go c.writePump()
	go c.readPump()
}

func (f *Feed) serveStats(w http.ResponseWriter, r *http.Request) {
	if f.stats == nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, strings.Join(f.stats.Snapshot(), "\n"))
}
