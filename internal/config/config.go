// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container shared by both
// binaries. It aggregates all sub-configurations and is populated by merging
// values from a .env file, environment variables, command-line flags, and an
// optional JSON/YAML file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the client identity announced to the MCP server during the
	// handshake.
	App App `envPrefix:"APP_"`

	// Adapter holds the MCP server connection settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Server holds the listen address and timeouts of the web application.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// ConfigFilePath is the optional path to a JSON or YAML configuration
	// file. When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds the client identity pair sent to the server.
type App struct {
	// Name is the client name (e.g. "AdminAssistant").
	// Env: APP_NAME
	Name string `env:"NAME"`

	// Version is the client version string (e.g. "1.0.0").
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds the settings of the MCP connection handle.
type Adapter struct {
	// ServerURL points at the remote server's event-stream endpoint
	// (e.g. "http://localhost:3000/sse").
	// Env: ADAPTER_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// PingTimeout bounds the event-stream health ping (e.g. "5s").
	// Handshake and remote calls are not bounded by it.
	// Env: ADAPTER_PING_TIMEOUT
	PingTimeout time.Duration `env:"PING_TIMEOUT"`

	// ConnectTimeout bounds the connect the web application starts on
	// launch (e.g. "30s").
	// Env: ADAPTER_CONNECT_TIMEOUT
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT"`
}

// Server holds network and timeout settings of the web application.
type Server struct {
	// HTTPAddress is the TCP address on which the web application listens,
	// in "host:port" format (e.g. "localhost:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request (e.g. "30s"). The /events stream is exempt.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown, including the final
	// disconnect from the MCP server.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// RefreshInterval defines how often the web application re-fetches the
	// tool and resource lists. Zero disables the refresh worker.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// File is the log file used by the terminal client.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. .env file and environment variables
//  2. Command-line flags (os.Args)
//  3. JSON/YAML file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withFile().
		build()
}
