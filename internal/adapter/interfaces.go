// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the connection handle through which the rest of
// the application talks to a remote MCP server.
//
// The primary abstraction is [Handle]: one long-lived wrapper around a single
// MCP client bound to one server URL. It owns the connect/disconnect
// lifecycle, forwards tool and resource calls to the SDK session and reports
// lifecycle transitions as events through its embedded
// [eventsource.EventTarget].
//
// Protocol framing and transport negotiation are delegated to
// github.com/modelcontextprotocol/go-sdk. [Connector] and [Session] are the
// seams between the handle and the SDK; the SDK-backed implementations live
// in connector.go.
//
// Errors defined in errors.go let callers dispatch with [errors.Is] and
// [errors.As] (e.g. [ErrNotConnected], [*ConnectionError]).
package adapter

import (
	"context"

	"github.com/MKhiriev/mcp-assistant/internal/eventsource"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Handle is a single connection to an MCP server. All methods are safe for
// concurrent use.
type Handle interface {
	eventsource.EventTarget

	// ServerURL returns the event-stream endpoint the handle is bound to.
	ServerURL() string

	// Connect opens a fresh transport to the server and performs the
	// protocol handshake. It returns [ErrAlreadyConnected] when connected,
	// [ErrConnectInProgress] while another connect or disconnect runs, and a
	// [*ConnectionError] carrying the underlying message when the handshake
	// fails. Cancelling ctx aborts the handshake only; once Connect returned
	// the session lives until Disconnect.
	Connect(ctx context.Context) error

	// Disconnect closes the session. It is a no-op when the handle is not
	// connected, cancels and waits for a connect in flight, and always
	// leaves the handle disconnected.
	Disconnect(ctx context.Context) error

	// IsConnected reports whether the last Connect succeeded and no
	// Disconnect followed it.
	IsConnected() bool

	// CallTool invokes the named remote tool with args. Arguments are not
	// validated locally; the result is returned unmodified.
	CallTool(ctx context.Context, name string, args any) (*mcp.CallToolResult, error)

	// ListTools returns the tools the server exposes.
	ListTools(ctx context.Context) (*mcp.ListToolsResult, error)

	// ListResources returns the resources the server exposes.
	ListResources(ctx context.Context) (*mcp.ListResourcesResult, error)

	// ListResourceTemplates returns the URI templates of parameterised
	// resources.
	ListResourceTemplates(ctx context.Context) (*mcp.ListResourceTemplatesResult, error)

	// ReadResource fetches the resource identified by uri.
	ReadResource(ctx context.Context, uri string) (*mcp.ReadResourceResult, error)

	// Ping opens a bare event stream on the server URL and returns the
	// first event the server sends. It does not touch the session.
	Ping(ctx context.Context) (eventsource.Event, error)
}

// Connector opens protocol sessions. A new transport is built on every call.
type Connector interface {
	Connect(ctx context.Context) (Session, error)
}

// Session is the subset of *mcp.ClientSession the handle relies on.
type Session interface {
	CallTool(ctx context.Context, params *mcp.CallToolParams) (*mcp.CallToolResult, error)
	ListTools(ctx context.Context, params *mcp.ListToolsParams) (*mcp.ListToolsResult, error)
	ListResources(ctx context.Context, params *mcp.ListResourcesParams) (*mcp.ListResourcesResult, error)
	ListResourceTemplates(ctx context.Context, params *mcp.ListResourceTemplatesParams) (*mcp.ListResourceTemplatesResult, error)
	ReadResource(ctx context.Context, params *mcp.ReadResourceParams) (*mcp.ReadResourceResult, error)
	Close() error
}
