// Package debug serves read-only telemetry over HTTP while the game runs
package debug

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/lixenwraith/cthulhu-strike/arena"
	"github.com/lixenwraith/cthulhu-strike/status"
)

const shutdownTimeout = 2 * time.Second

// SnapshotSource yields the latest published snapshot, nil before the first tick
// Satisfied by *atomic.Pointer[arena.Snapshot]
type SnapshotSource interface {
	Load() *arena.Snapshot
}

// Server exposes the status registry and the latest snapshot
// Handlers only read atomics, never the world
type Server struct {
	HTTP      *http.Server
	registry  *status.Registry
	snapshots SnapshotSource
	sessionID string
}

// NewServer creates a server listening on addr
func NewServer(addr string, registry *status.Registry, snapshots SnapshotSource, sessionID string) *Server {
	s := &Server{
		registry:  registry,
		snapshots: snapshots,
		sessionID: sessionID,
	}
	s.HTTP = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Router builds the route table
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/status", s.handleStatus).Methods(http.MethodGet)
	r.HandleFunc("/status/{name}", s.handleMetric).Methods(http.MethodGet)
	r.HandleFunc("/snapshot", s.handleSnapshot).Methods(http.MethodGet)
	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("[debug] listening on %s", s.HTTP.Addr)
		errCh <- s.HTTP.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.HTTP.Shutdown(shutdownCtx); err != nil {
		log.Printf("[debug] graceful shutdown failed: %v", err)
		return s.HTTP.Close()
	}
	return nil
}

type statusResponse struct {
	SessionID string         `json:"session_id"`
	Metrics   map[string]any `json:"metrics"`
}

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{
		SessionID: s.sessionID,
		Metrics:   s.registry.Snapshot(),
	})
}

func (s *Server) handleMetric(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	val, ok := s.registry.Lookup(name)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown metric " + name})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{name: val})
}

func (s *Server) handleSnapshot(w http.ResponseWriter, _ *http.Request) {
	snap := s.snapshots.Load()
	if snap == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "no snapshot yet"})
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[debug] encode response: %v", err)
	}
}
