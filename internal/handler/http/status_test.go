package http

import (
	"bufio"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/mcp-assistant/internal/adapter"
	"github.com/MKhiriev/mcp-assistant/internal/eventsource"
	"github.com/MKhiriev/mcp-assistant/internal/logger"
	"github.com/MKhiriev/mcp-assistant/internal/utils"
	"github.com/MKhiriev/mcp-assistant/internal/workers"
	"github.com/MKhiriev/mcp-assistant/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmaxmax/go-sse"
	"go.uber.org/mock/gomock"
)

func TestGetStatus(t *testing.T) {
	env := newTestEnv(t)
	env.handle.EXPECT().IsConnected().Return(false)

	rec := env.do(t, http.MethodGet, "/api/status", "")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, models.StatusResponse{
		Status:    "Disconnected",
		Connected: false,
		ServerURL: testServerURL,
	}, decodeBody[models.StatusResponse](t, rec))
}

func TestGetStatus_OutsideProviderScope(t *testing.T) {
	env := newTestEnv(t)

	// обработчик вызван напрямую, без middleware провайдера
	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	req = req.WithContext(logger.Nop().WithContext(req.Context()))
	rec := httptest.NewRecorder()
	env.handler.getStatus(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, decodeBody[utils.ErrorBody](t, rec).Error, "outside of a provider scope")
}

func TestConnect_EchoServer(t *testing.T) {
	env := newTestEnv(t)
	env.handle.EXPECT().IsConnected().Return(false)
	env.handle.EXPECT().Connect(gomock.Any()).DoAndReturn(func(context.Context) error {
		env.target.DispatchEvent(eventsource.NewEvent(adapter.EventConnecting, testServerURL))
		env.target.DispatchEvent(eventsource.NewEvent(eventsource.EventOpen, testServerURL))
		return nil
	})
	env.expectCatalogFetch()

	rec := env.do(t, http.MethodPost, "/api/connect", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	catalog := decodeBody[models.Catalog](t, rec)
	require.Len(t, catalog.Tools, 1)
	assert.Equal(t, "echo: Echoes input", catalog.Tools[0].String())
	assert.Equal(t, "Connected", env.services.StatusService.Current().String())
}

func TestConnect_ConnectionRefused(t *testing.T) {
	env := newTestEnv(t)
	connErr := &adapter.ConnectionError{ServerURL: testServerURL, Err: errors.New("ECONNREFUSED")}
	env.handle.EXPECT().IsConnected().Return(false)
	env.handle.EXPECT().Connect(gomock.Any()).DoAndReturn(func(context.Context) error {
		env.target.DispatchEvent(eventsource.NewEvent(eventsource.EventError, connErr.Error()))
		return connErr
	})

	rec := env.do(t, http.MethodPost, "/api/connect", "")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "ECONNREFUSED", decodeBody[utils.ErrorBody](t, rec).Error)
	assert.Equal(t, "Error: ECONNREFUSED", env.services.StatusService.Current().String())
}

func TestConnect_InProgress(t *testing.T) {
	env := newTestEnv(t)
	env.handle.EXPECT().IsConnected().Return(false)
	env.handle.EXPECT().Connect(gomock.Any()).Return(adapter.ErrConnectInProgress)

	rec := env.do(t, http.MethodPost, "/api/connect", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestDisconnect(t *testing.T) {
	env := newTestEnv(t)
	env.handle.EXPECT().Disconnect(gomock.Any()).DoAndReturn(func(context.Context) error {
		env.target.DispatchEvent(eventsource.NewEvent(eventsource.EventClose, ""))
		return nil
	})
	env.handle.EXPECT().IsConnected().Return(false)

	rec := env.do(t, http.MethodPost, "/api/disconnect", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Disconnected", decodeBody[models.StatusResponse](t, rec).Status)
}

func TestHealth(t *testing.T) {
	t.Run("reachable", func(t *testing.T) {
		env := newTestEnv(t)
		env.handle.EXPECT().Ping(gomock.Any()).Return(eventsource.NewEvent("endpoint", "/message?sessionId=1"), nil)

		rec := env.do(t, http.MethodGet, "/api/health", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, models.HealthResponse{Reachable: true, Event: "endpoint", Data: "/message?sessionId=1"},
			decodeBody[models.HealthResponse](t, rec))
	})

	t.Run("unreachable", func(t *testing.T) {
		env := newTestEnv(t)
		env.handle.EXPECT().Ping(gomock.Any()).Return(eventsource.Event{},
			&adapter.ConnectionError{ServerURL: testServerURL, Err: errors.New("ECONNREFUSED")})

		rec := env.do(t, http.MethodGet, "/api/health", "")
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, models.HealthResponse{Reachable: false, Error: "ECONNREFUSED"},
			decodeBody[models.HealthResponse](t, rec))
	})
}

func TestEvents_StreamsStatusChanges(t *testing.T) {
	env := newTestEnv(t)

	srv := httptest.NewServer(env.handler.Init())
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/events", nil)
	require.NoError(t, err)
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/event-stream"))

	events := make(chan sse.Event, 8)
	go func() {
		defer close(events)
		for ev, err := range sse.Read(bufio.NewReader(resp.Body), nil) {
			if err != nil {
				return
			}
			events <- ev
		}
	}()

	next := func() models.StatusResponse {
		t.Helper()
		select {
		case ev, ok := <-events:
			require.True(t, ok, "stream closed early")
			assert.Equal(t, statusEventType, ev.Type)
			var s models.StatusResponse
			require.NoError(t, jsonUnmarshal(ev.Data, &s))
			return s
		case <-ctx.Done():
			t.Fatal("no status event received")
			return models.StatusResponse{}
		}
	}

	first := next()
	assert.Equal(t, "Disconnected", first.Status)
	assert.Equal(t, testServerURL, first.ServerURL)

	env.target.DispatchEvent(eventsource.NewEvent(eventsource.EventOpen, testServerURL))
	second := next()
	assert.Equal(t, "Connected", second.Status)
	assert.True(t, second.Connected)
}

func TestRouter_ServesWhileLaunchConnectIsBlocked(t *testing.T) {
	env := newTestEnv(t)
	env.handle.EXPECT().IsConnected().Return(false).AnyTimes()

	started := make(chan struct{})
	env.handle.EXPECT().Connect(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		env.target.DispatchEvent(eventsource.NewEvent(adapter.EventConnecting, testServerURL))
		close(started)
		// сервер принял TCP-соединение, но не отвечает
		<-ctx.Done()
		connErr := &adapter.ConnectionError{ServerURL: testServerURL, Err: ctx.Err()}
		env.target.DispatchEvent(eventsource.NewEvent(eventsource.EventError, connErr.Error()))
		return connErr
	})

	connect := workers.NewConnectWorker(env.services.CatalogService, time.Minute, logger.Nop())
	connect.Run(context.Background())
	<-started

	rec := env.do(t, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `<span id="status">Connecting...</span>`)

	rec = env.do(t, http.MethodGet, "/api/status", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Connecting...", decodeBody[models.StatusResponse](t, rec).Status)

	// остановка отменяет висящий connect, статус уходит в ошибку
	connect.Stop()
	assert.Equal(t, "Error: "+context.Canceled.Error(), env.services.StatusService.Current().String())
}
