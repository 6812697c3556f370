package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/MKhiriev/mcp-assistant/internal/config"
	"github.com/MKhiriev/mcp-assistant/internal/logger"
)

type server struct {
	httpServer      *httpServer
	shutdownTimeout time.Duration
	hooks           []ShutdownHook
	logger          *logger.Logger

	shutdownOnce sync.Once
	shutdownErr  error
}

// Option customises the server built by [NewServer].
type Option func(*server)

// WithShutdownHook registers hook to run after the listener is closed.
// Hooks run in registration order.
func WithShutdownHook(hook ShutdownHook) Option {
	return func(s *server) {
		s.hooks = append(s.hooks, hook)
	}
}

func NewServer(handler http.Handler, cfg config.WebServer, logger *logger.Logger, opts ...Option) (Server, error) {
	if handler == nil {
		return nil, errNoHandler
	}
	if cfg.HTTPAddress == "" {
		return nil, errEmptyAddress
	}

	logger.Info().Msg("creating new server...")
	s := &server{
		httpServer:      newHTTPServer(handler, cfg, logger),
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	l, err := s.httpServer.listen()
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.httpServer.server.Addr, err)
	}

	serveErr := make(chan error, 1)
	s.logger.Info().Msg("Launching HTTP server")
	go func() {
		serveErr <- s.httpServer.serve(l)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
	case runErr = <-serveErr:
		if runErr != nil {
			s.logger.Err(runErr).Msg("HTTP server stopped unexpectedly")
			runErr = fmt.Errorf("serve http: %w", runErr)
		}
	}

	shutdownCtx, cancel := s.shutdownContext(ctx)
	defer cancel()

	if err = s.Shutdown(shutdownCtx); err != nil {
		runErr = errors.Join(runErr, err)
	}

	if runErr == nil {
		s.logger.Info().Msg("server Shutdown gracefully")
	}
	return runErr
}

// Shutdown closes the listener, waits for in-flight requests and then runs
// the hooks. Only the first call does any work.
func (s *server) Shutdown(ctx context.Context) error {
	s.shutdownOnce.Do(func() {
		var errs []error
		if err := s.httpServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutdown http: %w", err))
		}

		for _, hook := range s.hooks {
			if err := hook(ctx); err != nil {
				s.logger.Warn().Err(err).Msg("shutdown hook failed")
				errs = append(errs, err)
			}
		}

		s.shutdownErr = errors.Join(errs...)
	})
	return s.shutdownErr
}

func (s *server) shutdownContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx := context.WithoutCancel(parent)
	if s.shutdownTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.shutdownTimeout)
}
