package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/mcp-assistant/internal/logger"
	"github.com/MKhiriev/mcp-assistant/internal/service"
)

// closeTimeout bounds the final disconnect when the UI exits.
const closeTimeout = 5 * time.Second

var (
	ErrNoUI       = errors.New("client: ui is not set")
	ErrNoServices = errors.New("client: services are not set")
	ErrNoScope    = errors.New("client: provider scope is not set")
)

type App struct {
	scope    Scope
	services *service.ClientServices
	ui       UI
	logger   *logger.Logger
}

func NewApp(scope Scope, services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	switch {
	case scope == nil:
		return nil, ErrNoScope
	case services == nil:
		return nil, ErrNoServices
	case ui == nil:
		return nil, ErrNoUI
	}

	return &App{
		scope:    scope,
		services: services,
		ui:       ui,
		logger:   logger,
	}, nil
}

// Run shows the UI and, once it exits, stops the services and closes the
// provider scope. The scope is closed even when the UI fails.
func (a *App) Run(ctx context.Context) (err error) {
	defer func() {
		a.services.Close()

		closeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), closeTimeout)
		defer cancel()
		if closeErr := a.scope.Close(closeCtx); closeErr != nil {
			a.logger.Warn().Err(closeErr).Msg("closing connection scope")
			if err == nil {
				err = fmt.Errorf("close connection scope: %w", closeErr)
			}
		}
	}()

	a.logger.Info().Str("server_url", a.services.CatalogService.ServerURL()).Msg("terminal client started")

	if err = a.ui.Run(ctx); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
