package server

import (
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strconv"
	"sync"

	"github.com/GHutch55/demo-app/api/v1/router"
	"github.com/GHutch55/demo-app/config"
)

// Server owns one listening socket and the HTTP server behind it.
type Server struct {
	cfg    config.Config
	out    io.Writer
	logOut io.Writer

	httpServer *http.Server

	mu       sync.Mutex
	listener net.Listener
	done     chan error
}

// Option configures a Server built by New.
type Option func(*Server)

// WithOutput sets where the startup line is written. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(s *Server) { s.out = w }
}

// WithLogOutput sets where request logs are written. Defaults to stderr.
func WithLogOutput(w io.Writer) Option {
	return func(s *Server) { s.logOut = w }
}

// New builds a server for cfg. Nothing is bound until Start.
func New(cfg config.Config, opts ...Option) *Server {
	s := &Server{
		cfg:    cfg,
		out:    os.Stdout,
		logOut: os.Stderr,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.httpServer = &http.Server{
		Handler: router.NewRouter(cfg, s.logOut),
	}
	return s
}

// Start binds the configured port once and serves in the background.
func (s *Server) Start() error {
	addr := ":" + strconv.Itoa(s.cfg.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to bind %s: %w", addr, err)
	}
	done := make(chan error, 1)

	s.mu.Lock()
	s.listener = ln
	s.done = done
	s.mu.Unlock()

	fmt.Fprintf(s.out, "Server running on port %d (build %s)\n", s.Port(), s.cfg.BuildID)

	go func() {
		err := s.httpServer.Serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		done <- err
	}()
	return nil
}

// ListenAndServe starts the server and blocks until it stops.
func (s *Server) ListenAndServe() error {
	if err := s.Start(); err != nil {
		return err
	}
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()
	return <-done
}

// Addr returns the bound address, or nil before Start.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Port returns the bound TCP port, or the configured one before Start.
func (s *Server) Port() int {
	if tcp, ok := s.Addr().(*net.TCPAddr); ok {
		return tcp.Port
	}
	return s.cfg.Port
}

// Close stops accepting connections and drops active ones.
func (s *Server) Close() error {
	err := s.httpServer.Close()

	s.mu.Lock()
	defer s.mu.Unlock()
	// Serve may not have picked up the listener yet.
	if s.listener != nil {
		_ = s.listener.Close()
	}
	return err
}
