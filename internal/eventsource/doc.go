// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package eventsource provides the event-stream primitives the MCP connection
// layer builds on: an [Event] value, an [EventTarget] dispatch base with
// onopen/onmessage/onerror/onclose attribute handlers, and an [EventSource]
// client that reads a text/event-stream over HTTP.
//
// The primitives are registered process-wide as a [Capabilities] set.
// Binaries call [Install] once at start-up; it fills every capability that
// has not been supplied through [Provide] with the defaults of this package
// and is safe to call any number of times.
//
//	eventsource.Install()
//	caps := eventsource.Default()
//	src := caps.NewSource("http://localhost:3000/sse", eventsource.SourceConfig{})
//	src.OnMessage(func(e eventsource.Event) { fmt.Println(e.Data) })
//	if err := src.Open(ctx); err != nil { ... }
//	defer src.Close()
package eventsource
