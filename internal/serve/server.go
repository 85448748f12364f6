// Package serve exposes local screen resources over HTTP so remote loading
// can be exercised without a real backend.
package serve

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"

	"dynui/internal/loader"
)

// DefaultPort is the default screen server port.
const DefaultPort = 9877

// PortEnv overrides the port when none is given explicitly.
const PortEnv = "DYNUI_SERVE_PORT"

// Server serves <dir>/<name>.json at /screens/<name>.
type Server struct {
	resources *loader.Resources
	server    *http.Server
	port      int
	logger    *slog.Logger
}

// ResolvePort returns port if valid, else DYNUI_SERVE_PORT, else DefaultPort.
func ResolvePort(port int) int {
	if validPort(port) {
		return port
	}
	if portStr := os.Getenv(PortEnv); portStr != "" {
		if p, err := strconv.Atoi(portStr); err == nil && validPort(p) {
			return p
		}
	}
	return DefaultPort
}

func validPort(p int) bool {
	return p > 0 && p < 65536
}

// NewServer creates a screen server. A zero port falls back to the
// environment, then DefaultPort.
func NewServer(resources *loader.Resources, port int, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		resources: resources,
		port:      ResolvePort(port),
		logger:    logger,
	}
	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.port),
		Handler: s.Handler(),
	}
	return s
}

// Handler returns the server's routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/screens/", s.handleScreen)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

// Start begins listening (non-blocking).
func (s *Server) Start() error {
	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("screen server stopped", "err", err)
		}
	}()
	return nil
}

// ListenAndServe serves until the server is shut down.
func (s *Server) ListenAndServe() error {
	err := s.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Port returns the port the server listens on.
func (s *Server) Port() int {
	return s.port
}

// URL returns the address a client should load name from.
func (s *Server) URL(name string) string {
	return fmt.Sprintf("http://localhost:%d/screens/%s", s.port, name)
}

// handleScreen handles GET /screens/<name>.
func (s *Server) handleScreen(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	name := strings.TrimPrefix(r.URL.Path, "/screens/")
	if name == "" {
		http.Error(w, "screen name required", http.StatusNotFound)
		return
	}

	data, err := s.resources.Read(name)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		http.Error(w, "screen not found", http.StatusNotFound)
		return
	case errors.Is(err, fs.ErrInvalid):
		http.Error(w, "invalid screen name", http.StatusBadRequest)
		return
	case err != nil:
		s.logger.Warn("screen read failed", "name", name, "err", err)
		http.Error(w, "read failed", http.StatusInternalServerError)
		return
	}

	s.logger.Debug("screen served", "name", name, "bytes", len(data))
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodGet {
		_, _ = w.Write(data)
	}
}
