// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// StatusKind enumerates the connection states shown to the user.
type StatusKind int

const (
	StatusDisconnected StatusKind = iota
	StatusConnecting
	StatusConnected
	StatusError
)

// Status is the connection status line shown by both UIs.
type Status struct {
	Kind StatusKind
	// Message holds the error message for StatusError.
	Message string
}

func DisconnectedStatus() Status { return Status{Kind: StatusDisconnected} }
func ConnectingStatus() Status   { return Status{Kind: StatusConnecting} }
func ConnectedStatus() Status    { return Status{Kind: StatusConnected} }

// ErrorStatus builds the status for a failed operation; msg is shown
// verbatim.
func ErrorStatus(msg string) Status { return Status{Kind: StatusError, Message: msg} }

// String returns the status text: "Disconnected", "Connecting...",
// "Connected" or "Error: <message>".
func (s Status) String() string {
	switch s.Kind {
	case StatusConnecting:
		return "Connecting..."
	case StatusConnected:
		return "Connected"
	case StatusError:
		return "Error: " + s.Message
	default:
		return "Disconnected"
	}
}
