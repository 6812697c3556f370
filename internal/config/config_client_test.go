// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientConfig_AppliesDefaults(t *testing.T) {
	cfg, err := newClientConfig(&StructuredConfig{
		Adapter: Adapter{ServerURL: "http://localhost:3000"},
	})
	require.NoError(t, err)

	assert.Equal(t, DefaultClientName, cfg.App.Name)
	assert.Equal(t, DefaultClientVersion, cfg.App.Version)
	assert.Equal(t, "http://localhost:3000", cfg.Adapter.ServerURL)
	assert.Equal(t, DefaultPingTimeout, cfg.Adapter.PingTimeout)
}

func TestNewClientConfig_KeepsExplicitValues(t *testing.T) {
	cfg, err := newClientConfig(&StructuredConfig{
		App:     App{Name: "custom", Version: "9.9.9"},
		Adapter: Adapter{ServerURL: "https://mcp.example.com/sse", PingTimeout: time.Second},
		Log:     Log{Level: "info", File: "/tmp/a.log"},
	})
	require.NoError(t, err)

	assert.Equal(t, "custom", cfg.App.Name)
	assert.Equal(t, "9.9.9", cfg.App.Version)
	assert.Equal(t, time.Second, cfg.Adapter.PingTimeout)
	assert.Equal(t, ClientLog{Level: "info", File: "/tmp/a.log"}, cfg.Log)
}

func TestNewClientConfig_Validation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     StructuredConfig
		wantErr error
	}{
		{
			name:    "missing server url",
			cfg:     StructuredConfig{},
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "negative ping timeout",
			cfg:     StructuredConfig{Adapter: Adapter{ServerURL: "http://localhost:3000", PingTimeout: -time.Second}},
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "negative connect timeout",
			cfg:     StructuredConfig{Adapter: Adapter{ServerURL: "http://localhost:3000", ConnectTimeout: -time.Second}},
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "relative url",
			cfg:     StructuredConfig{Adapter: Adapter{ServerURL: "/sse"}},
			wantErr: ErrInvalidServerURL,
		},
		{
			name:    "unsupported scheme",
			cfg:     StructuredConfig{Adapter: Adapter{ServerURL: "ws://localhost:3000"}},
			wantErr: ErrInvalidServerURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := newClientConfig(&tt.cfg)
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewWebConfig_AppliesDefaults(t *testing.T) {
	cfg, err := newWebConfig(&StructuredConfig{
		Adapter: Adapter{ServerURL: "http://localhost:3000"},
	})
	require.NoError(t, err)

	assert.Equal(t, DefaultWebClientName, cfg.App.Name)
	assert.Equal(t, DefaultClientVersion, cfg.App.Version)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultShutdownTimeout, cfg.Server.ShutdownTimeout)
	assert.Equal(t, DefaultConnectTimeout, cfg.Adapter.ConnectTimeout)
	assert.Zero(t, cfg.Workers.RefreshInterval)
}

func TestNewWebConfig_Validation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     StructuredConfig
		wantErr error
	}{
		{
			name:    "missing server url",
			cfg:     StructuredConfig{},
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name: "negative refresh interval",
			cfg: StructuredConfig{
				Adapter: Adapter{ServerURL: "http://localhost:3000"},
				Workers: Workers{RefreshInterval: -time.Minute},
			},
			wantErr: ErrInvalidWorkerConfigs,
		},
		{
			name: "negative request timeout",
			cfg: StructuredConfig{
				Adapter: Adapter{ServerURL: "http://localhost:3000"},
				Server:  Server{RequestTimeout: -time.Second},
			},
			wantErr: ErrInvalidServerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := newWebConfig(&tt.cfg)
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
