package server

import "context"

// Server defines the lifecycle contract of the web server.
//
// [RunServer] blocks until ctx is cancelled, a stop signal arrives or the
// listener fails, then shuts down gracefully before returning.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server and runs the shutdown hooks.
	Shutdown(ctx context.Context) error
}

// ShutdownHook is called once during shutdown with a context bounded by the
// shutdown timeout.
type ShutdownHook func(ctx context.Context) error
