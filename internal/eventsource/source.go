// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package eventsource

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/mcp-assistant/internal/utils"
	"github.com/tmaxmax/go-sse"
)

// ReadyState mirrors the readyState attribute of a browser EventSource.
type ReadyState int

const (
	Connecting ReadyState = iota
	Open
	Closed
)

func (s ReadyState) String() string {
	switch s {
	case Connecting:
		return "connecting"
	case Open:
		return "open"
	case Closed:
		return "closed"
	default:
		return fmt.Sprintf("ReadyState(%d)", int(s))
	}
}

// EventSource is a one-shot server-push client. Unlike a browser
// EventSource it does not reconnect: once the stream ends the source is
// [Closed] and a new one has to be created.
type EventSource interface {
	EventTarget

	// Open issues the stream request and returns once the server accepted
	// it, after the open event was dispatched. Events are then dispatched
	// from a background goroutine until the stream ends, ctx is cancelled
	// or Close is called.
	Open(ctx context.Context) error
	// Close stops the stream and waits for the reader to exit.
	Close()
	ReadyState() ReadyState
	URL() string
}

// SourceConfig configures a new [EventSource].
type SourceConfig struct {
	// HTTPClient is used for the stream request. A fresh client is created
	// when nil. It must not carry a request timeout.
	HTTPClient *utils.HTTPClient
	// Headers are added to the stream request.
	Headers map[string]string
}

// Source is the default [EventSource] built on resty and go-sse.
type Source struct {
	*Target

	url     string
	client  *utils.HTTPClient
	headers map[string]string

	mu          sync.Mutex
	state       ReadyState
	opened      bool
	cancel      context.CancelFunc
	done        chan struct{}
	lastEventID string
}

// NewSource returns a [Source] for url in the [Connecting] state.
func NewSource(url string, cfg SourceConfig) EventSource {
	client := cfg.HTTPClient
	if client == nil {
		client = utils.NewHTTPClient()
	}

	return &Source{
		Target:  NewTarget(),
		url:     url,
		client:  client,
		headers: cfg.Headers,
		done:    make(chan struct{}),
	}
}

func (s *Source) URL() string { return s.url }

func (s *Source) ReadyState() ReadyState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Source) Open(ctx context.Context) error {
	s.mu.Lock()
	if s.state == Closed {
		s.mu.Unlock()
		return ErrSourceClosed
	}
	if s.opened {
		s.mu.Unlock()
		return ErrSourceOpened
	}
	streamCtx, cancel := context.WithCancel(ctx)
	s.opened = true
	s.cancel = cancel
	s.mu.Unlock()

	resp, err := s.client.R().
		SetContext(streamCtx).
		SetDoNotParseResponse(true).
		SetHeaders(s.headers).
		SetHeader("Accept", "text/event-stream").
		SetHeader("Cache-Control", "no-cache").
		Get(s.url)
	if err != nil {
		return s.fail(fmt.Errorf("event stream request: %w", err))
	}

	body := resp.RawBody()
	if resp.StatusCode() != http.StatusOK {
		_ = body.Close()
		return s.fail(fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status()))
	}
	if ct := resp.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/event-stream") {
		_ = body.Close()
		return s.fail(fmt.Errorf("%w: %q", ErrUnexpectedContentType, ct))
	}

	s.mu.Lock()
	if s.state == Closed {
		s.mu.Unlock()
		_ = body.Close()
		close(s.done)
		return ErrSourceClosed
	}
	s.state = Open
	s.mu.Unlock()

	s.DispatchEvent(NewEvent(EventOpen, ""))
	go s.read(streamCtx, body)

	return nil
}

// fail moves the source to Closed after an unsuccessful Open and reports err
// through the error event unless Close already ended the source.
func (s *Source) fail(err error) error {
	s.mu.Lock()
	closedByCaller := s.state == Closed
	s.state = Closed
	s.cancel()
	s.mu.Unlock()
	close(s.done)

	if closedByCaller {
		return ErrSourceClosed
	}
	s.DispatchEvent(NewEvent(EventError, err.Error()))
	return err
}

func (s *Source) read(ctx context.Context, body io.ReadCloser) {
	defer close(s.done)
	defer body.Close()

	for ev, err := range sse.Read(body, nil) {
		if err != nil {
			if ctx.Err() == nil {
				s.DispatchEvent(Event{Type: EventError, Data: err.Error(), LastEventID: s.getLastEventID()})
			}
			break
		}

		typ := ev.Type
		if typ == "" {
			typ = EventMessage
		}
		if ev.LastEventID != "" {
			s.setLastEventID(ev.LastEventID)
		}
		s.DispatchEvent(Event{Type: typ, Data: ev.Data, LastEventID: s.getLastEventID()})
	}

	s.mu.Lock()
	s.state = Closed
	s.mu.Unlock()

	s.DispatchEvent(Event{Type: EventClose, LastEventID: s.getLastEventID()})
}

func (s *Source) Close() {
	s.mu.Lock()
	opened, cancel := s.opened, s.cancel
	s.state = Closed
	s.mu.Unlock()

	if !opened {
		return
	}
	cancel()
	<-s.done
}

func (s *Source) getLastEventID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastEventID
}

func (s *Source) setLastEventID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastEventID = id
}
