// Package web exposes a live spectator feed: battle events streamed as
// JSON frames over WebSocket while a match runs.
package web

import (
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/crucible-tabletop/crucible/internal/sim"
)

// isValidOrigin checks if the origin is allowed to connect: same-origin
// and localhost only.
func isValidOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		// No origin header - could be a non-browser client
		return true
	}

	originURL, err := url.Parse(origin)
	if err != nil {
		return false
	}

	if r.Host == originURL.Host {
		return true
	}

	if strings.HasPrefix(originURL.Host, "localhost:") ||
		strings.HasPrefix(originURL.Host, "127.0.0.1:") ||
		originURL.Host == "localhost" ||
		originURL.Host == "127.0.0.1" {
		return true
	}

	return false
}

var upgrader = websocket.Upgrader{
	CheckOrigin:       isValidOrigin,
	EnableCompression: true,
}

// Feed fans battle events out to any number of connected spectators.
type Feed struct {
	logger *log.Logger

	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

// NewFeed creates an empty feed.
func NewFeed(logger *log.Logger) *Feed {
	return &Feed{
		logger:  logger,
		clients: make(map[*websocket.Conn]bool),
	}
}

// Handler upgrades an HTTP request to a spectator connection. The read
// side is drained only to detect disconnects; spectators never send.
func (f *Feed) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			f.logger.Warn("websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
			return
		}

		f.mu.Lock()
		f.clients[conn] = true
		n := len(f.clients)
		f.mu.Unlock()
		f.logger.Info("spectator connected", "remote", r.RemoteAddr, "spectators", n)

		go func() {
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					f.remove(conn)
					f.logger.Info("spectator disconnected", "remote", r.RemoteAddr)
					return
				}
			}
		}()
	}
}

// Broadcast sends one event to every connected spectator, dropping
// connections that fail to accept it.
func (f *Feed) Broadcast(ev sim.Event) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for conn := range f.clients {
		if err := conn.WriteJSON(ev); err != nil {
			conn.Close()
			delete(f.clients, conn)
		}
	}
}

// Spectators returns the number of connected clients.
func (f *Feed) Spectators() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.clients)
}

// Close disconnects every spectator.
func (f *Feed) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	for conn := range f.clients {
		conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "match over"))
		conn.Close()
		delete(f.clients, conn)
	}
}

func (f *Feed) remove(conn *websocket.Conn) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.clients[conn] {
		conn.Close()
		delete(f.clients, conn)
	}
}
