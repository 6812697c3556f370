// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package eventsource

import "sync"

// EventTarget is the dispatch base shared by [EventSource] and the MCP
// connection handle.
type EventTarget interface {
	// AddEventListener registers fn for events of type typ and returns a
	// function that removes exactly that registration.
	AddEventListener(typ string, fn Listener) (remove func())
	// DispatchEvent delivers e to the attribute handler of e.Type first and
	// then to every registered listener in registration order.
	DispatchEvent(e Event)

	// OnOpen, OnMessage, OnError and OnClose set the attribute handler of
	// the matching event type, replacing the previous one. nil clears it.
	OnOpen(fn Listener)
	OnMessage(fn Listener)
	OnError(fn Listener)
	OnClose(fn Listener)
}

type listenerEntry struct {
	id uint64
	fn Listener
}

// Target is the default [EventTarget]. The zero value is ready to use and
// all methods are safe for concurrent use. Listeners are invoked outside the
// internal lock, so a listener may add or remove listeners.
type Target struct {
	mu        sync.RWMutex
	nextID    uint64
	listeners map[string][]listenerEntry
	handlers  map[string]Listener
}

// NewTarget returns an empty *Target.
func NewTarget() *Target {
	return &Target{}
}

func (t *Target) AddEventListener(typ string, fn Listener) func() {
	if fn == nil {
		return func() {}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.listeners == nil {
		t.listeners = make(map[string][]listenerEntry)
	}
	t.nextID++
	id := t.nextID
	t.listeners[typ] = append(t.listeners[typ], listenerEntry{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() { t.removeListener(typ, id) })
	}
}

func (t *Target) removeListener(typ string, id uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	entries := t.listeners[typ]
	for i, e := range entries {
		if e.id == id {
			t.listeners[typ] = append(entries[:i:i], entries[i+1:]...)
			break
		}
	}
	if len(t.listeners[typ]) == 0 {
		delete(t.listeners, typ)
	}
}

func (t *Target) DispatchEvent(e Event) {
	t.mu.RLock()
	handler := t.handlers[e.Type]
	entries := make([]listenerEntry, len(t.listeners[e.Type]))
	copy(entries, t.listeners[e.Type])
	t.mu.RUnlock()

	if handler != nil {
		handler(e)
	}
	for _, entry := range entries {
		entry.fn(e)
	}
}

func (t *Target) OnOpen(fn Listener)    { t.setHandler(EventOpen, fn) }
func (t *Target) OnMessage(fn Listener) { t.setHandler(EventMessage, fn) }
func (t *Target) OnError(fn Listener)   { t.setHandler(EventError, fn) }
func (t *Target) OnClose(fn Listener)   { t.setHandler(EventClose, fn) }

func (t *Target) setHandler(typ string, fn Listener) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if fn == nil {
		delete(t.handlers, typ)
		return
	}
	if t.handlers == nil {
		t.handlers = make(map[string]Listener)
	}
	t.handlers[typ] = fn
}
