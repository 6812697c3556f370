// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Request errors reported with 400 Bad Request. Callers can match against
// them with [errors.Is].
var (
	// ErrInvalidJSON is returned when a request body is not valid JSON.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrStreamingUnsupported is returned by /events when the connection
	// cannot be upgraded to an event stream.
	ErrStreamingUnsupported = errors.New("event streaming is not supported")
)
