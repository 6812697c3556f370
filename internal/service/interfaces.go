// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service sits between the connection handle and the two user
// interfaces. It loads the tool and resource catalog, tracks the connection
// status from handle events and keeps the catalog fresh in the background.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/mcp-assistant/internal/eventsource"
	"github.com/MKhiriev/mcp-assistant/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// CatalogService drives the handle on behalf of the UIs and caches the last
// fetched catalog.
type CatalogService interface {
	// ServerURL returns the URL of the server behind the handle.
	ServerURL() string

	// IsConnected reports the handle's connection state.
	IsConnected() bool

	// Connect connects the handle. Connection failures are reported to the
	// status service and returned unchanged.
	Connect(ctx context.Context) error

	// ConnectAndFetch connects (unless already connected), then lists tools
	// and resources. This is the "Connect" action of both UIs.
	ConnectAndFetch(ctx context.Context) (models.Catalog, error)

	// Refresh re-lists tools, resources and resource templates over the
	// current session and replaces the cached catalog.
	Refresh(ctx context.Context) (models.Catalog, error)

	// Catalog returns the last successfully fetched catalog; the zero value
	// when nothing was fetched yet.
	Catalog() models.Catalog

	// Disconnect closes the session and clears the cached catalog.
	Disconnect(ctx context.Context) error

	// CallTool forwards a tool call; the result is returned unmodified.
	CallTool(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error)

	// ReadResource forwards a resource read.
	ReadResource(ctx context.Context, uri string) (*mcp.ReadResourceResult, error)

	// ExpandTemplate expands an RFC 6570 URI template with vars. Every
	// variable of the template must be given.
	ExpandTemplate(template string, vars map[string]string) (string, error)

	// ReadTemplate expands template and reads the resulting resource.
	ReadTemplate(ctx context.Context, template string, vars map[string]string) (*mcp.ReadResourceResult, error)

	// Ping checks that the server's event stream answers.
	Ping(ctx context.Context) (eventsource.Event, error)
}

// StatusService turns handle lifecycle events into the status line shown by
// the UIs.
type StatusService interface {
	// Current returns the latest status.
	Current() models.Status

	// Fail sets the error status with err's message verbatim.
	Fail(err error)

	// Subscribe returns a channel receiving every status change and a func
	// that unsubscribes and closes the channel. Slow subscribers only see the
	// latest status.
	Subscribe() (<-chan models.Status, func())

	// Close detaches from the handle and closes all subscriptions.
	Close()
}

// RefreshJob periodically refreshes the catalog while the handle is
// connected.
type RefreshJob interface {
	// Start stops any running job and starts a new one ticking every
	// interval. The job stops when ctx is cancelled or Stop is called.
	Start(ctx context.Context, interval time.Duration)

	// Stop stops the job and waits until it exits. Safe to call when idle.
	Stop()
}

// AppInfoService reports the identity and build of the running binary.
type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.VersionResponse
}
