// Package server owns the console API's HTTP lifecycle: bind, serve,
// graceful shutdown with a deadline.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// HTTPServer wraps http.Server with explicit lifecycle control so the CLI
// can bind, report readiness, and drain on shutdown.
type HTTPServer struct {
	srv      *http.Server
	listener net.Listener
	log      zerolog.Logger
	timeout  time.Duration
}

// New creates an HTTP server for the given handler. Nothing is bound until
// Start.
func New(addr string, handler http.Handler, requestTimeout, shutdownTimeout time.Duration, log zerolog.Logger) *HTTPServer {
	return &HTTPServer{
		srv: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: requestTimeout,
			ReadTimeout:       requestTimeout,
			WriteTimeout:      requestTimeout,
		},
		log:     log,
		timeout: shutdownTimeout,
	}
}

// Start binds the listen address and serves until Shutdown or a fatal
// listener error. Blocks; run it in a goroutine and watch the returned
// error channel pattern from the caller.
func (s *HTTPServer) Start() error {
	listener, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.srv.Addr, err)
	}
	s.listener = listener

	s.log.Info().Str("addr", listener.Addr().String()).Msg("console api listening")

	if err := s.srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Addr returns the bound listen address, useful when the configured port
// is 0.
func (s *HTTPServer) Addr() string {
	if s.listener == nil {
		return s.srv.Addr
	}
	return s.listener.Addr().String()
}

// Shutdown drains in-flight requests, forcing close when the shutdown
// deadline passes.
func (s *HTTPServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	s.log.Info().Dur("timeout", s.timeout).Msg("shutting down console api")

	if err := s.srv.Shutdown(ctx); err != nil {
		s.log.Warn().Err(err).Msg("graceful shutdown incomplete, forcing close")
		return s.srv.Close()
	}
	return nil
}
