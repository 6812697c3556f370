// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks the merged [StructuredConfig] before any view is built.
// Only fields that are set are checked here; presence rules live in the
// per-binary views.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.ServerURL != "" {
		if err := validateServerURL(cfg.Adapter.ServerURL); err != nil {
			return err
		}
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	return validateAdapter(cfg.Adapter)
}

func (cfg *WebConfig) validate() error {
	if err := validateAdapter(cfg.Adapter); err != nil {
		return err
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.RefreshInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func validateAdapter(a ClientAdapter) error {
	if a.ServerURL == "" || a.PingTimeout < 0 || a.ConnectTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	return validateServerURL(a.ServerURL)
}

func validateServerURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidServerURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q must be an absolute http(s) url", ErrInvalidServerURL, raw)
	}

	return nil
}
