// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package eventsource

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmaxmax/go-sse"
)

// sseServer отдаёт заданные сообщения и, если hold, держит поток открытым
func sseServer(t *testing.T, hold bool, msgs ...*sse.Message) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "text/event-stream", r.Header.Get("Accept"))

		sess, err := sse.Upgrade(w, r)
		if !assert.NoError(t, err) {
			return
		}
		for _, m := range msgs {
			if !assert.NoError(t, sess.Send(m)) {
				return
			}
		}
		assert.NoError(t, sess.Flush())

		if hold {
			<-r.Context().Done()
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func message(typ, id, data string) *sse.Message {
	m := &sse.Message{}
	if typ != "" {
		m.Type = sse.Type(typ)
	}
	if id != "" {
		m.ID = sse.ID(id)
	}
	m.AppendData(data)
	return m
}

// collect подписывается на типы событий и пишет их в канал
func collect(src EventSource, types ...string) <-chan Event {
	ch := make(chan Event, 16)
	for _, typ := range types {
		src.AddEventListener(typ, func(e Event) { ch <- e })
	}
	return ch
}

func next(t *testing.T, ch <-chan Event) Event {
	t.Helper()
	select {
	case e := <-ch:
		return e
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestSource_ReadsStream(t *testing.T) {
	srv := sseServer(t, false,
		message("endpoint", "", "/messages?sessionid=1"),
		message("", "42", "hello"),
	)

	src := NewSource(srv.URL, SourceConfig{})
	events := collect(src, EventOpen, "endpoint", EventMessage, EventError, EventClose)
	assert.Equal(t, Connecting, src.ReadyState())
	assert.Equal(t, srv.URL, src.URL())

	require.NoError(t, src.Open(context.Background()))
	defer src.Close()

	assert.Equal(t, EventOpen, next(t, events).Type)

	endpoint := next(t, events)
	assert.Equal(t, "endpoint", endpoint.Type)
	assert.Equal(t, "/messages?sessionid=1", endpoint.Data)

	// безымянное событие приходит как message
	msg := next(t, events)
	assert.Equal(t, EventMessage, msg.Type)
	assert.Equal(t, "hello", msg.Data)
	assert.Equal(t, "42", msg.LastEventID)

	closed := next(t, events)
	assert.Equal(t, EventClose, closed.Type)
	assert.Equal(t, "42", closed.LastEventID)
	assert.Equal(t, Closed, src.ReadyState())
}

func TestSource_AttributeHandlers(t *testing.T) {
	srv := sseServer(t, false, message("", "", "payload"))

	src := NewSource(srv.URL, SourceConfig{})
	opened := make(chan struct{}, 1)
	got := make(chan string, 1)
	src.OnOpen(func(Event) { opened <- struct{}{} })
	src.OnMessage(func(e Event) { got <- e.Data })

	require.NoError(t, src.Open(context.Background()))
	defer src.Close()

	<-opened
	select {
	case data := <-got:
		assert.Equal(t, "payload", data)
	case <-time.After(5 * time.Second):
		t.Fatal("onmessage was not called")
	}
}

func TestSource_SendsConfiguredHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "mcp-assistant", r.Header.Get("User-Agent"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	src := NewSource(srv.URL, SourceConfig{Headers: map[string]string{"User-Agent": "mcp-assistant"}})
	err := src.Open(context.Background())
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
}

func TestSource_OpenErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr error
	}{
		{
			name: "not found",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				http.NotFound(w, nil)
			},
			wantErr: ErrUnexpectedStatus,
		},
		{
			name: "plain text response",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "text/plain")
				_, _ = w.Write([]byte("hello"))
			},
			wantErr: ErrUnexpectedContentType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			src := NewSource(srv.URL, SourceConfig{})
			errs := collect(src, EventError)

			err := src.Open(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, Closed, src.ReadyState())
			assert.Equal(t, err.Error(), next(t, errs).Data)

			assert.NotPanics(t, src.Close)
		})
	}
}

func TestSource_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	src := NewSource(url, SourceConfig{})
	errs := collect(src, EventError)

	err := src.Open(context.Background())
	require.Error(t, err)
	assert.Contains(t, next(t, errs).Data, "connection refused")
}

func TestSource_OpenTwice(t *testing.T) {
	srv := sseServer(t, true, message("", "", "x"))

	src := NewSource(srv.URL, SourceConfig{})
	require.NoError(t, src.Open(context.Background()))
	defer src.Close()

	assert.ErrorIs(t, src.Open(context.Background()), ErrSourceOpened)
}

func TestSource_CloseStopsStream(t *testing.T) {
	srv := sseServer(t, true, message("", "", "first"))

	src := NewSource(srv.URL, SourceConfig{})
	events := collect(src, EventMessage, EventError, EventClose)

	require.NoError(t, src.Open(context.Background()))
	assert.Equal(t, Open, src.ReadyState())
	assert.Equal(t, "first", next(t, events).Data)

	src.Close()

	// после Close ошибка чтения не публикуется, только close
	assert.Equal(t, EventClose, next(t, events).Type)
	assert.Equal(t, Closed, src.ReadyState())
	assert.ErrorIs(t, src.Open(context.Background()), ErrSourceClosed)
}

func TestSource_CloseBeforeOpen(t *testing.T) {
	src := NewSource("http://127.0.0.1:1", SourceConfig{})
	src.Close()

	assert.Equal(t, Closed, src.ReadyState())
	assert.ErrorIs(t, src.Open(context.Background()), ErrSourceClosed)
}

func TestSource_ContextCancelEndsStream(t *testing.T) {
	srv := sseServer(t, true, message("", "", "first"))

	ctx, cancel := context.WithCancel(context.Background())
	src := NewSource(srv.URL, SourceConfig{})
	events := collect(src, EventMessage, EventClose)

	require.NoError(t, src.Open(ctx))
	assert.Equal(t, EventMessage, next(t, events).Type)

	cancel()
	assert.Equal(t, EventClose, next(t, events).Type)
	src.Close()
}

func TestReadyState_String(t *testing.T) {
	assert.Equal(t, "connecting", Connecting.String())
	assert.Equal(t, "open", Open.String())
	assert.Equal(t, "closed", Closed.String())
	assert.Equal(t, "ReadyState(7)", ReadyState(7).String())
}
