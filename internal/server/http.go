package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/mcp-assistant/internal/config"
	"github.com/MKhiriev/mcp-assistant/internal/logger"
)

const readHeaderTimeout = 10 * time.Second

type httpServer struct {
	server *http.Server
	logger *logger.Logger
}

// newHTTPServer does not set WriteTimeout: /events is a long-lived stream and
// API requests are bounded by the router's timeout middleware instead.
// Request contexts are cancelled as soon as Shutdown starts so open streams
// end and do not hold the shutdown until its deadline.
func newHTTPServer(handler http.Handler, cfg config.WebServer, logger *logger.Logger) *httpServer {
	baseCtx, cancel := context.WithCancel(context.Background())

	srv := &http.Server{
		Addr:              cfg.HTTPAddress,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		ErrorLog:          logger.StdLogger(),
		BaseContext:       func(net.Listener) context.Context { return baseCtx },
	}
	srv.RegisterOnShutdown(cancel)

	return &httpServer{server: srv, logger: logger}
}

func (h *httpServer) listen() (net.Listener, error) {
	return net.Listen("tcp", h.server.Addr)
}

// serve blocks until the server is shut down. http.ErrServerClosed is not an
// error here.
func (h *httpServer) serve(l net.Listener) error {
	h.logger.Info().Str("address", l.Addr().String()).Msg("HTTP server listening")

	if err := h.server.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (h *httpServer) Shutdown(ctx context.Context) error {
	h.logger.Info().Msg("HTTP server Shutdown")
	return h.server.Shutdown(ctx)
}
