// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package provider owns the single [adapter.Handle] of an application scope
// and hands it to everything inside that scope.
//
// A [Provider] is created once per scope (the terminal UI program or the
// web route group) and builds its handle lazily, exactly once. Code inside
// the scope either receives the provider explicitly or looks the handle up
// from a context.Context carrying it ([WithProvider], [FromContext]).
// Looking it up outside a scope fails immediately with [ErrNoProvider].
package provider

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/MKhiriev/mcp-assistant/internal/adapter"
)

var (
	ErrNoProvider = errors.New("mcp handle requested outside of a provider scope")
	ErrClosed     = errors.New("provider scope closed")
)

// Factory builds the handle for serverURL.
type Factory func(serverURL string) (adapter.Handle, error)

// Provider holds the one handle of its scope.
type Provider struct {
	serverURL string
	factory   Factory

	once   sync.Once
	handle adapter.Handle
	err    error
}

// New returns a Provider for serverURL. The handle is not built until the
// first call to Handle.
func New(serverURL string, factory Factory) *Provider {
	return &Provider{serverURL: serverURL, factory: factory}
}

// ServerURL returns the address the scope's handle is bound to.
func (p *Provider) ServerURL() string { return p.serverURL }

// Handle returns the scope's handle, building it on the first call. Every
// later call returns the same instance, or the same construction error.
func (p *Provider) Handle() (adapter.Handle, error) {
	p.once.Do(func() {
		p.handle, p.err = p.factory(p.serverURL)
	})
	return p.handle, p.err
}

// Close tears the scope down: it disconnects the handle if one was built.
// Calling it on a provider whose handle was never requested does nothing.
func (p *Provider) Close(ctx context.Context) error {
	// a scope closed before first use never builds a handle
	p.once.Do(func() { p.err = ErrClosed })

	if p.handle == nil {
		return nil
	}
	return p.handle.Disconnect(ctx)
}

type ctxKey struct{}

// WithProvider returns a copy of ctx that carries p.
func WithProvider(ctx context.Context, p *Provider) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// FromContext returns the handle of the provider carried by ctx. It returns
// [ErrNoProvider] when ctx is outside any provider scope.
func FromContext(ctx context.Context) (adapter.Handle, error) {
	p, ok := ctx.Value(ctxKey{}).(*Provider)
	if !ok || p == nil {
		return nil, ErrNoProvider
	}
	return p.Handle()
}

// MustFromContext is like FromContext but panics when the lookup fails.
// It is meant for wiring code where a missing provider is a programming
// error.
func MustFromContext(ctx context.Context) adapter.Handle {
	h, err := FromContext(ctx)
	if err != nil {
		panic(err)
	}
	return h
}

// Middleware puts p into the context of every request passing through it,
// scoping a route group to the provider.
func (p *Provider) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(WithProvider(r.Context(), p)))
	})
}
