package hubserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"
)

// DefaultPort is used when neither the CLI argument nor the config file
// names a port.
const DefaultPort = 8080

// shutdownGrace bounds how long in-flight responses may finish after an
// interrupt.
const shutdownGrace = 5 * time.Second

// Server serves a directory tree as static HTTP content.
type Server struct {
	root string
	port int
}

// New returns a server for the given root directory and port.
func New(root string, port int) *Server {
	return &Server{root: root, port: port}
}

// Listen binds the TCP port. Bind failures (port already in use) surface
// immediately instead of when the first request arrives.
func (s *Server) Listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", s.port))
	if err != nil {
		return nil, fmt.Errorf("binding port %d: %w", s.port, err)
	}
	return ln, nil
}

// URL returns the local URL served by the given listener.
func (s *Server) URL(ln net.Listener) string {
	port := s.port
	if addr, ok := ln.Addr().(*net.TCPAddr); ok {
		port = addr.Port
	}
	return fmt.Sprintf("http://localhost:%d", port)
}

// Serve handles requests on ln until ctx is canceled, then shuts down
// gracefully. The returned error is nil on a clean shutdown.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler: http.FileServer(http.Dir(s.root)),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down: %w", err)
		}
		<-errCh
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
