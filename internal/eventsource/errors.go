// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package eventsource

import "errors"

var (
	ErrSourceOpened          = errors.New("event source already opened")
	ErrSourceClosed          = errors.New("event source closed")
	ErrUnexpectedStatus      = errors.New("unexpected event stream status")
	ErrUnexpectedContentType = errors.New("unexpected event stream content type")
)
