// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Defaults applied by the per-binary config views when a field was left
// empty by every source.
const (
	DefaultClientName      = "AdminAssistant"
	DefaultWebClientName   = "mcp-web"
	DefaultClientVersion   = "1.0.0"
	DefaultHTTPAddress     = "localhost:8080"
	DefaultPingTimeout     = 5 * time.Second
	DefaultConnectTimeout  = 30 * time.Second
	DefaultRequestTimeout  = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
)

// ClientApp holds the client identity announced to the MCP server.
type ClientApp struct {
	// Name is the client name sent in the handshake.
	Name string
	// Version is the client version sent in the handshake.
	Version string
}

// ClientAdapter holds the settings of the MCP connection handle.
type ClientAdapter struct {
	// ServerURL is the event-stream endpoint of the MCP server.
	ServerURL string
	// PingTimeout bounds the event-stream health ping.
	PingTimeout time.Duration
	// ConnectTimeout bounds the launch-time connect of the web application.
	ConnectTimeout time.Duration
}

// ClientLog holds logging settings.
type ClientLog struct {
	// Level is a zerolog level name.
	Level string
	// File is the terminal client log file.
	File string
}

// ClientConfig is the terminal client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains the client identity.
	App ClientApp
	// Adapter contains the MCP connection settings.
	Adapter ClientAdapter
	// Log contains logging settings.
	Log ClientLog
}

// WebServer holds listen address and timeouts of the web application.
type WebServer struct {
	// HTTPAddress is the listen address.
	HTTPAddress string
	// RequestTimeout bounds a single API request.
	RequestTimeout time.Duration
	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration
}

// WebWorkers holds background worker settings of the web application.
type WebWorkers struct {
	// RefreshInterval defines how often the catalog is re-fetched; zero
	// disables the worker.
	RefreshInterval time.Duration
}

// WebConfig is the web application configuration assembled from
// [StructuredConfig].
type WebConfig struct {
	// App contains the client identity.
	App ClientApp
	// Adapter contains the MCP connection settings.
	Adapter ClientAdapter
	// Server contains web server settings.
	Server WebServer
	// Workers contains background job settings.
	Workers WebWorkers
	// Log contains logging settings.
	Log ClientLog
}

// GetClientConfig builds and validates the terminal client config view from
// the merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

// GetWebConfig builds and validates the web application config view from the
// merged structured configuration.
func GetWebConfig() (*WebConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newWebConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: ClientApp{
			Name:    orDefault(cfg.App.Name, DefaultClientName),
			Version: orDefault(cfg.App.Version, DefaultClientVersion),
		},
		Adapter: ClientAdapter{
			ServerURL:      cfg.Adapter.ServerURL,
			PingTimeout:    durationOrDefault(cfg.Adapter.PingTimeout, DefaultPingTimeout),
			ConnectTimeout: durationOrDefault(cfg.Adapter.ConnectTimeout, DefaultConnectTimeout),
		},
		Log: ClientLog{
			Level: cfg.Log.Level,
			File:  cfg.Log.File,
		},
	}

	if err := clientCfg.validate(); err != nil {
		return nil, err
	}

	return clientCfg, nil
}

func newWebConfig(cfg *StructuredConfig) (*WebConfig, error) {
	webCfg := &WebConfig{
		App: ClientApp{
			Name:    orDefault(cfg.App.Name, DefaultWebClientName),
			Version: orDefault(cfg.App.Version, DefaultClientVersion),
		},
		Adapter: ClientAdapter{
			ServerURL:      cfg.Adapter.ServerURL,
			PingTimeout:    durationOrDefault(cfg.Adapter.PingTimeout, DefaultPingTimeout),
			ConnectTimeout: durationOrDefault(cfg.Adapter.ConnectTimeout, DefaultConnectTimeout),
		},
		Server: WebServer{
			HTTPAddress:     orDefault(cfg.Server.HTTPAddress, DefaultHTTPAddress),
			RequestTimeout:  durationOrDefault(cfg.Server.RequestTimeout, DefaultRequestTimeout),
			ShutdownTimeout: durationOrDefault(cfg.Server.ShutdownTimeout, DefaultShutdownTimeout),
		},
		Workers: WebWorkers{
			RefreshInterval: cfg.Workers.RefreshInterval,
		},
		Log: ClientLog{
			Level: cfg.Log.Level,
			File:  cfg.Log.File,
		},
	}

	if err := webCfg.validate(); err != nil {
		return nil, err
	}

	return webCfg, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func durationOrDefault(v, def time.Duration) time.Duration {
	if v == 0 {
		return def
	}
	return v
}
