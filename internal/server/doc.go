// Package server runs the web application's HTTP server.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown bounded by the configured timeout. Shutdown hooks run after the
// listener is closed, which is where the web binary disconnects from the MCP
// server.
package server
