// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the interactive terminal client on top of
// bubbletea. It renders the connection status, a Connect action and the
// server's tool and resource lists.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/mcp-assistant/internal/logger"
	"github.com/MKhiriev/mcp-assistant/internal/service"
	"github.com/MKhiriev/mcp-assistant/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrNoServices = errors.New("tui: client services are not set")

type TUI struct {
	services  *service.ClientServices
	appName   string
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	// programOptions are appended to the defaults; tests use them to run
	// without a terminal.
	programOptions []tea.ProgramOption
}

func New(services *service.ClientServices, appName string, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, ErrNoServices
	}
	return &TUI{
		services:  services,
		appName:   appName,
		buildInfo: buildInfo,
		logger:    log,
	}, nil
}

// Run shows the assistant page until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	statusCh, unsubscribe := t.services.StatusService.Subscribe()
	defer unsubscribe()

	page := newAssistantModel(ctx, t.services, statusCh)
	root := NewRootModel(page, t.appName, t.buildInfo)

	opts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, t.programOptions...)
	finalModel, err := tea.NewProgram(root, opts...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			t.logger.Info().Msg("terminal client stopped by context")
			return nil
		}
		return err
	}

	if result, ok := finalModel.(RootModel); ok && result.quitByUser {
		t.logger.Info().Msg("terminal client closed by user")
	}
	return nil
}
