// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the layout of JSON and YAML config files. Both formats
// are first read into a generic map and then decoded here with mapstructure,
// so duration fields accept strings like "30s".
type fileConfig struct {
	App struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	} `json:"app"`

	Adapter struct {
		ServerURL      string        `json:"server_url"`
		PingTimeout    time.Duration `json:"ping_timeout"`
		ConnectTimeout time.Duration `json:"connect_timeout"`
	} `json:"adapter"`

	Server struct {
		HTTPAddress     string        `json:"http_address"`
		RequestTimeout  time.Duration `json:"request_timeout"`
		ShutdownTimeout time.Duration `json:"shutdown_timeout"`
	} `json:"server"`

	Workers struct {
		RefreshInterval time.Duration `json:"refresh_interval"`
	} `json:"workers"`

	Log struct {
		Level string `json:"level"`
		File  string `json:"file"`
	} `json:"log"`
}

func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	raw := make(map[string]any)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &raw)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedConfigFile, path)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding config file %s: %w", path, err)
	}

	var fc fileConfig
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     &fc,
		TagName:    "json",
		DecodeHook: mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return nil, fmt.Errorf("error creating config decoder: %w", err)
	}
	if err = decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("error decoding config file %s: %w", path, err)
	}

	return &StructuredConfig{
		App: App{
			Name:    fc.App.Name,
			Version: fc.App.Version,
		},
		Adapter: Adapter{
			ServerURL:      fc.Adapter.ServerURL,
			PingTimeout:    fc.Adapter.PingTimeout,
			ConnectTimeout: fc.Adapter.ConnectTimeout,
		},
		Server: Server{
			HTTPAddress:     fc.Server.HTTPAddress,
			RequestTimeout:  fc.Server.RequestTimeout,
			ShutdownTimeout: fc.Server.ShutdownTimeout,
		},
		Workers: Workers{
			RefreshInterval: fc.Workers.RefreshInterval,
		},
		Log: Log{
			Level: fc.Log.Level,
			File:  fc.Log.File,
		},
	}, nil
}
