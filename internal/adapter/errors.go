// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrEmptyServerURL    = errors.New("server url is empty")
	ErrNotConnected      = errors.New("not connected to MCP server")
	ErrAlreadyConnected  = errors.New("already connected to MCP server")
	ErrConnectInProgress = errors.New("connect or disconnect already in progress")
	ErrConnectAborted    = errors.New("connect aborted by disconnect")
	ErrEmptyToolName     = errors.New("tool name is empty")
	ErrEmptyResourceURI  = errors.New("resource uri is empty")
	ErrStreamClosed      = errors.New("event stream closed before first event")
)

// ConnectionError reports a failed handshake or transport setup. Its message
// is the underlying error's message unchanged, so it can be shown to users
// as is.
type ConnectionError struct {
	ServerURL string
	Err       error
}

func (e *ConnectionError) Error() string { return e.Err.Error() }

func (e *ConnectionError) Unwrap() error { return e.Err }

// RemoteCallError reports a failure of a pass-through call. Op names the
// call ("callTool", "listTools", ...). The message is the collaborator's
// message unchanged.
type RemoteCallError struct {
	Op  string
	Err error
}

func (e *RemoteCallError) Error() string { return e.Err.Error() }

func (e *RemoteCallError) Unwrap() error { return e.Err }
