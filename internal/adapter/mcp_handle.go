// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/mcp-assistant/internal/config"
	"github.com/MKhiriev/mcp-assistant/internal/eventsource"
	"github.com/MKhiriev/mcp-assistant/internal/logger"
	"github.com/MKhiriev/mcp-assistant/internal/utils"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// EventConnecting is dispatched when a handshake starts. The handle also
// dispatches [eventsource.EventOpen] on success, [eventsource.EventError]
// (Data holds the message) on failure and [eventsource.EventClose] after a
// disconnect.
const EventConnecting = "connecting"

type connState int

const (
	stateDisconnected connState = iota
	stateConnecting
	stateConnected
	stateDisconnecting
)

func (s connState) String() string {
	switch s {
	case stateConnecting:
		return "connecting"
	case stateConnected:
		return "connected"
	case stateDisconnecting:
		return "disconnecting"
	default:
		return "disconnected"
	}
}

type mcpHandle struct {
	eventsource.EventTarget

	serverURL    string
	connector    Connector
	caps         eventsource.Capabilities
	httpClient   *utils.HTTPClient
	pingTimeout  time.Duration
	logger       *logger.Logger

	mu      sync.Mutex
	state   connState
	session Session
	// cancel ends the session context; during a handshake it aborts it
	cancel context.CancelFunc
	// transition is closed when the running connect or disconnect finishes
	transition chan struct{}
	aborted    bool
}

// NewMCPHandle builds a [Handle] bound to cfg.ServerURL that announces app as
// the client identity. The MCP client is created here, once; every Connect
// builds a fresh SSE transport for it.
func NewMCPHandle(cfg config.ClientAdapter, app config.ClientApp, log *logger.Logger) (Handle, error) {
	if cfg.ServerURL == "" {
		return nil, ErrEmptyServerURL
	}

	httpClient := utils.NewHTTPClient(utils.WithUserAgent(app.Name, app.Version))
	connector := NewSDKConnector(app, cfg.ServerURL, httpClient.StdClient())

	return newMCPHandle(cfg, connector, httpClient, log), nil
}

func newMCPHandle(cfg config.ClientAdapter, connector Connector, httpClient *utils.HTTPClient, log *logger.Logger) *mcpHandle {
	caps := eventsource.Default()

	log.Debug().Str("server_url", cfg.ServerURL).Msg("mcp handle created")
	return &mcpHandle{
		EventTarget:  caps.NewTarget(),
		serverURL:    cfg.ServerURL,
		connector:    connector,
		caps:         caps,
		httpClient:   httpClient,
		pingTimeout:  cfg.PingTimeout,
		logger:       log,
	}
}

func (h *mcpHandle) ServerURL() string { return h.serverURL }

func (h *mcpHandle) IsConnected() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state == stateConnected
}

func (h *mcpHandle) Connect(ctx context.Context) error {
	h.mu.Lock()
	switch h.state {
	case stateConnected:
		h.mu.Unlock()
		return ErrAlreadyConnected
	case stateConnecting, stateDisconnecting:
		h.mu.Unlock()
		return ErrConnectInProgress
	}

	// the session must outlive ctx, which often belongs to a single request
	sessionCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	done := make(chan struct{})
	h.state = stateConnecting
	h.cancel = cancel
	h.transition = done
	h.aborted = false
	h.mu.Unlock()
	defer close(done)

	h.logger.Info().Str("server_url", h.serverURL).Msg("connecting to MCP server")
	h.DispatchEvent(h.caps.NewEvent(EventConnecting, h.serverURL))

	stop := context.AfterFunc(ctx, cancel)
	session, err := h.connector.Connect(sessionCtx)
	stop()

	if err == nil && sessionCtx.Err() != nil {
		_ = session.Close()
		err = sessionCtx.Err()
	}

	h.mu.Lock()
	if err != nil {
		aborted := h.aborted
		h.state = stateDisconnected
		h.cancel = nil
		h.mu.Unlock()
		cancel()

		if aborted {
			err = ErrConnectAborted
		}
		connErr := &ConnectionError{ServerURL: h.serverURL, Err: err}
		h.logger.Err(err).Str("server_url", h.serverURL).Msg("failed to connect to MCP server")

		if aborted {
			h.DispatchEvent(h.caps.NewEvent(eventsource.EventClose, ""))
		} else {
			h.DispatchEvent(h.caps.NewEvent(eventsource.EventError, connErr.Error()))
		}
		return connErr
	}

	h.session = session
	h.state = stateConnected
	h.mu.Unlock()

	h.logger.Info().Str("server_url", h.serverURL).Msg("connected to MCP server")
	h.DispatchEvent(h.caps.NewEvent(eventsource.EventOpen, h.serverURL))
	return nil
}

func (h *mcpHandle) Disconnect(ctx context.Context) error {
	h.mu.Lock()
	for h.state == stateConnecting || h.state == stateDisconnecting {
		if h.state == stateConnecting {
			h.aborted = true
			h.cancel()
		}
		wait := h.transition
		h.mu.Unlock()

		select {
		case <-wait:
		case <-ctx.Done():
			return ctx.Err()
		}
		h.mu.Lock()
	}

	if h.state == stateDisconnected {
		h.mu.Unlock()
		return nil
	}

	session, cancel := h.session, h.cancel
	done := make(chan struct{})
	h.state = stateDisconnecting
	h.transition = done
	h.mu.Unlock()
	defer close(done)

	if err := session.Close(); err != nil {
		// the session is gone either way
		h.logger.Warn().Err(err).Msg("error closing MCP session")
	}
	cancel()

	h.mu.Lock()
	h.state = stateDisconnected
	h.session = nil
	h.cancel = nil
	h.mu.Unlock()

	h.logger.Info().Str("server_url", h.serverURL).Msg("disconnected from MCP server")
	h.DispatchEvent(h.caps.NewEvent(eventsource.EventClose, ""))
	return nil
}

// activeSession snapshots the session so calls run without holding the lock.
func (h *mcpHandle) activeSession() (Session, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.state != stateConnected || h.session == nil {
		return nil, ErrNotConnected
	}
	return h.session, nil
}

func (h *mcpHandle) remoteError(op string, err error) error {
	h.logger.Err(err).Str("op", op).Msg("MCP call failed")
	return &RemoteCallError{Op: op, Err: err}
}

func (h *mcpHandle) CallTool(ctx context.Context, name string, args any) (*mcp.CallToolResult, error) {
	if name == "" {
		return nil, ErrEmptyToolName
	}
	session, err := h.activeSession()
	if err != nil {
		return nil, err
	}

	result, err := session.CallTool(ctx, &mcp.CallToolParams{Name: name, Arguments: args})
	if err != nil {
		return nil, h.remoteError("callTool", err)
	}
	return result, nil
}

func (h *mcpHandle) ListTools(ctx context.Context) (*mcp.ListToolsResult, error) {
	session, err := h.activeSession()
	if err != nil {
		return nil, err
	}

	result, err := session.ListTools(ctx, &mcp.ListToolsParams{})
	if err != nil {
		return nil, h.remoteError("listTools", err)
	}
	return result, nil
}

func (h *mcpHandle) ListResources(ctx context.Context) (*mcp.ListResourcesResult, error) {
	session, err := h.activeSession()
	if err != nil {
		return nil, err
	}

	result, err := session.ListResources(ctx, &mcp.ListResourcesParams{})
	if err != nil {
		return nil, h.remoteError("listResources", err)
	}
	return result, nil
}

func (h *mcpHandle) ListResourceTemplates(ctx context.Context) (*mcp.ListResourceTemplatesResult, error) {
	session, err := h.activeSession()
	if err != nil {
		return nil, err
	}

	result, err := session.ListResourceTemplates(ctx, &mcp.ListResourceTemplatesParams{})
	if err != nil {
		return nil, h.remoteError("listResourceTemplates", err)
	}
	return result, nil
}

func (h *mcpHandle) ReadResource(ctx context.Context, uri string) (*mcp.ReadResourceResult, error) {
	if uri == "" {
		return nil, ErrEmptyResourceURI
	}
	session, err := h.activeSession()
	if err != nil {
		return nil, err
	}

	result, err := session.ReadResource(ctx, &mcp.ReadResourceParams{URI: uri})
	if err != nil {
		return nil, h.remoteError("readResource", err)
	}
	return result, nil
}

func (h *mcpHandle) Ping(ctx context.Context) (eventsource.Event, error) {
	if h.pingTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.pingTimeout)
		defer cancel()
	}

	src := h.caps.NewSource(h.serverURL, eventsource.SourceConfig{HTTPClient: h.httpClient})

	first := make(chan eventsource.Event, 1)
	failed := make(chan error, 1)
	deliver := func(e eventsource.Event) {
		select {
		case first <- e:
		default:
		}
	}
	src.OnMessage(deliver)
	// MCP SSE servers announce the message endpoint first
	src.AddEventListener("endpoint", deliver)
	src.OnError(func(e eventsource.Event) {
		select {
		case failed <- errors.New(e.Data):
		default:
		}
	})
	src.OnClose(func(eventsource.Event) {
		select {
		case failed <- ErrStreamClosed:
		default:
		}
	})

	if err := src.Open(ctx); err != nil {
		return eventsource.Event{}, &ConnectionError{ServerURL: h.serverURL, Err: err}
	}
	defer src.Close()

	select {
	case e := <-first:
		return e, nil
	case err := <-failed:
		// an event may have raced the end of the stream
		select {
		case e := <-first:
			return e, nil
		default:
		}
		return eventsource.Event{}, &ConnectionError{ServerURL: h.serverURL, Err: err}
	case <-ctx.Done():
		return eventsource.Event{}, &ConnectionError{ServerURL: h.serverURL, Err: ctx.Err()}
	}
}
