// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoHandler    = errors.New("server: http handler is not set")
	errEmptyAddress = errors.New("server: http address is empty")
)
