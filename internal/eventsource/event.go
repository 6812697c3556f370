// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package eventsource

// Event types dispatched by [EventSource] and reused by the connection handle.
const (
	EventOpen    = "open"
	EventMessage = "message"
	EventError   = "error"
	EventClose   = "close"
)

// Event is a single notification delivered to listeners of an [EventTarget].
type Event struct {
	// Type is the event name. Unnamed stream events are delivered as
	// [EventMessage].
	Type string
	// Data is the event payload. For [EventError] it holds the error message.
	Data string
	// LastEventID is the id of the last stream event seen, if any.
	LastEventID string
}

// NewEvent builds an Event of the given type carrying data.
func NewEvent(typ, data string) Event {
	return Event{Type: typ, Data: data}
}

// Listener receives dispatched events.
type Listener func(Event)
