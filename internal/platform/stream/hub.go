// Package stream broadcasts per-frame game snapshots to WebSocket clients
// so an external renderer can draw the game running in the terminal.
// Frames are msgpack-encoded core.Snapshot values sent as binary messages.
// The stream is read-only: anything a client sends is discarded.
package stream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBufSize    = 16
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true // Non-browser clients don't send Origin
		}
		u, err := url.Parse(origin)
		if err != nil {
			return false
		}
		return u.Host == r.Host
	},
}

// Hub fans snapshots out to connected clients.
// Publish never blocks: a client whose buffer is full misses the frame.
type Hub struct {
	mu      sync.Mutex
	clients map[*client]struct{}
	latest  []byte
	frames  uint64
	dropped uint64
	closed  bool
	logger  *log.Logger
}

// NewHub creates an empty hub. A nil logger discards.
func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Hub{
		clients: make(map[*client]struct{}),
		logger:  logger,
	}
}

// Publish encodes a snapshot and queues it for every client.
// Encoding is skipped while nobody is listening.
func (h *Hub) Publish(snap core.Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed || len(h.clients) == 0 {
		return
	}

	data, err := msgpack.Marshal(&snap)
	if err != nil {
		h.logger.Warn("stream: cannot encode snapshot", "game", snap.Game, "error", err)
		return
	}
	h.latest = data
	h.frames++

	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			h.dropped++
		}
	}
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Stats returns how many frames were broadcast and how many per-client
// sends were dropped because a client was too slow.
func (h *Hub) Stats() (frames, dropped uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.frames, h.dropped
}

func (h *Hub) register(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c] = struct{}{}
	if h.latest != nil {
		c.send <- h.latest
	}
	return true
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

// Close disconnects every client and rejects new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}

// ServeWS upgrades the request and streams frames until the client leaves.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("stream: upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	c := &client{hub: h, conn: conn, send: make(chan []byte, sendBufSize)}
	if !h.register(c) {
		conn.Close()
		return
	}
	h.logger.Info("stream client connected", "remote", r.RemoteAddr)

	go c.writePump()
	go func() {
		c.readPump()
		h.logger.Info("stream client disconnected", "remote", r.RemoteAddr)
	}()
}

// Handler returns an HTTP handler serving the stream at /ws.
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", h.ServeWS)
	return mux
}

// Server serves a hub over HTTP.
type Server struct {
	hub  *Hub
	http *http.Server
	ln   net.Listener
}

// Listen binds addr and returns a server ready to Serve.
func Listen(addr string, hub *Hub) (*Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("stream: cannot listen on %s: %w", addr, err)
	}
	return &Server{
		hub:  hub,
		ln:   ln,
		http: &http.Server{Handler: hub.Handler(), ReadHeaderTimeout: 5 * time.Second},
	}, nil
}

// Addr returns the bound address.
func (s *Server) Addr() string {
	return s.ln.Addr().String()
}

// Serve blocks until Shutdown is called.
func (s *Server) Serve() error {
	err := s.http.Serve(s.ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stream: serve: %w", err)
	}
	return nil
}

// Shutdown disconnects clients and stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.hub.Close()
	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("stream: shutdown: %w", err)
	}
	return nil
}
