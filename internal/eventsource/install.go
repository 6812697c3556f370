// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package eventsource

import "sync"

// Capabilities is the set of event-stream constructors the rest of the
// application obtains through [Default].
type Capabilities struct {
	NewEvent  func(typ, data string) Event
	NewTarget func() EventTarget
	NewSource func(url string, cfg SourceConfig) EventSource
}

func (c Capabilities) complete() bool {
	return c.NewEvent != nil && c.NewTarget != nil && c.NewSource != nil
}

var (
	registryMu sync.Mutex
	registry   Capabilities
)

// defaults returns the implementations shipped with this package.
func defaults() Capabilities {
	return Capabilities{
		NewEvent:  NewEvent,
		NewTarget: func() EventTarget { return NewTarget() },
		NewSource: NewSource,
	}
}

// Provide registers platform-supplied capabilities. Only slots that are still
// empty are taken, so a capability is never registered twice.
func Provide(c Capabilities) {
	registryMu.Lock()
	defer registryMu.Unlock()

	fill(c)
}

// Install fills every capability that is still missing with the package
// defaults. It reports whether anything was installed; a second call in the
// same process installs nothing and returns false.
func Install() bool {
	registryMu.Lock()
	defer registryMu.Unlock()

	return fill(defaults())
}

// Default returns the registered capability set, installing the defaults on
// first use.
func Default() Capabilities {
	registryMu.Lock()
	defer registryMu.Unlock()

	if !registry.complete() {
		fill(defaults())
	}
	return registry
}

// fill must be called with registryMu held.
func fill(c Capabilities) bool {
	installed := false
	if registry.NewEvent == nil && c.NewEvent != nil {
		registry.NewEvent = c.NewEvent
		installed = true
	}
	if registry.NewTarget == nil && c.NewTarget != nil {
		registry.NewTarget = c.NewTarget
		installed = true
	}
	if registry.NewSource == nil && c.NewSource != nil {
		registry.NewSource = c.NewSource
		installed = true
	}
	return installed
}
