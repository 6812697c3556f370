// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It binds the terminal UI, the client services and the provider scope of
// the MCP connection handle into a single process lifecycle: the scope opens
// when the UI starts and is closed, disconnecting the handle, when it exits.
package client
