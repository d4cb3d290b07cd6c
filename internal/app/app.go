// Package app implements the read-only status surface for the rover
// daemon: the latest control loop snapshot over HTTP and a live feed over
// websocket. No endpoint mutates control state.
package app

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"AquaRover/internal/model"
	"AquaRover/internal/util"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// Server broadcasts per-tick status snapshots to websocket clients and
// serves the most recent one on /api/status.
type Server struct {
	Addr string

	mu      sync.Mutex
	clients map[*websocket.Conn]bool
	last    []byte

	server *http.Server
}

// NewServer constructs a Server listening on addr.
func NewServer(addr string) *Server {
	return &Server{Addr: addr, clients: map[*websocket.Conn]bool{}}
}

// Publish encodes one status snapshot and fans it out to every connected
// websocket client. Wired as the Rover's OnStatus callback, so it runs on
// the control loop goroutine and must stay cheap.
func (s *Server) Publish(st model.Status) {
	b, err := json.Marshal(st)
	if err != nil {
		util.Error("status encode: %v", err)
		return
	}
	s.mu.Lock()
	s.last = b
	for c := range s.clients {
		if err := c.WriteMessage(websocket.TextMessage, b); err != nil {
			_ = c.Close()
			delete(s.clients, c)
		}
	}
	s.mu.Unlock()
}

// Start launches the HTTP server for the status and ws endpoints.
// This call blocks until the server stops or fails.
func (s *Server) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/status", s.handleStatus)
	mux.HandleFunc("/ws", s.handleWS)
	s.server = &http.Server{Addr: s.Addr, Handler: mux}
	util.Info("status server listening on %s", s.Addr)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop gracefully shuts down the HTTP server and drops all clients.
func (s *Server) Stop() {
	if s.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := s.server.Shutdown(ctx); err != nil {
			util.Warn("status server shutdown: %v", err)
		}
	}
	s.mu.Lock()
	for c := range s.clients {
		_ = c.Close()
		delete(s.clients, c)
	}
	s.mu.Unlock()
}

// handleStatus serves the most recent snapshot as JSON.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	b := s.last
	s.mu.Unlock()
	if b == nil {
		http.Error(w, "no status yet", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(b); err != nil {
		util.Warn("status write: %v", err)
	}
}

// handleWS upgrades the connection and registers it for broadcasts. Client
// messages are read and discarded; a read error deregisters the client.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	c, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		util.Warn("ws upgrade: %v", err)
		return
	}
	s.mu.Lock()
	s.clients[c] = true
	s.mu.Unlock()

	go func() {
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				s.mu.Lock()
				delete(s.clients, c)
				s.mu.Unlock()
				_ = c.Close()
				return
			}
		}
	}()
}
