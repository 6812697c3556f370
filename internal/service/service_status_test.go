// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/mcp-assistant/internal/adapter"
	"github.com/MKhiriev/mcp-assistant/internal/eventsource"
	"github.com/MKhiriev/mcp-assistant/internal/logger"
	"github.com/MKhiriev/mcp-assistant/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, ch <-chan models.Status) models.Status {
	t.Helper()
	select {
	case s := <-ch:
		return s
	case <-time.After(time.Second):
		t.Fatal("status was not delivered")
		return models.Status{}
	}
}

func TestStatusService_InitialStatus(t *testing.T) {
	handle, _ := newEventedHandle(t, false)
	s := NewStatusService(handle, logger.Nop())
	defer s.Close()
	assert.Equal(t, "Disconnected", s.Current().String())

	connected, _ := newEventedHandle(t, true)
	s2 := NewStatusService(connected, logger.Nop())
	defer s2.Close()
	assert.Equal(t, "Connected", s2.Current().String())
}

func TestStatusService_FollowsHandleEvents(t *testing.T) {
	handle, target := newEventedHandle(t, false)
	s := NewStatusService(handle, logger.Nop())
	defer s.Close()

	steps := []struct {
		event eventsource.Event
		want  string
	}{
		{eventsource.NewEvent(adapter.EventConnecting, testServerURL), "Connecting..."},
		{eventsource.NewEvent(eventsource.EventOpen, testServerURL), "Connected"},
		{eventsource.NewEvent(eventsource.EventClose, ""), "Disconnected"},
		{eventsource.NewEvent(eventsource.EventError, "ECONNREFUSED"), "Error: ECONNREFUSED"},
	}

	for _, step := range steps {
		target.DispatchEvent(step.event)
		assert.Equal(t, step.want, s.Current().String())
	}
}

func TestStatusService_Fail(t *testing.T) {
	handle, _ := newEventedHandle(t, false)
	s := NewStatusService(handle, logger.Nop())
	defer s.Close()

	s.Fail(nil)
	assert.Equal(t, models.DisconnectedStatus(), s.Current())

	s.Fail(errors.New("Tool not found"))
	assert.Equal(t, "Error: Tool not found", s.Current().String())
}

func TestStatusService_Subscribe(t *testing.T) {
	handle, target := newEventedHandle(t, false)
	s := NewStatusService(handle, logger.Nop())
	defer s.Close()

	ch, unsubscribe := s.Subscribe()

	target.DispatchEvent(eventsource.NewEvent(eventsource.EventOpen, testServerURL))
	assert.Equal(t, models.ConnectedStatus(), receive(t, ch))

	unsubscribe()
	unsubscribe()

	_, ok := <-ch
	assert.False(t, ok, "канал закрывается после отписки")
}

func TestStatusService_SlowSubscriberGetsLatest(t *testing.T) {
	handle, target := newEventedHandle(t, false)
	s := NewStatusService(handle, logger.Nop())
	defer s.Close()

	ch, unsubscribe := s.Subscribe()
	defer unsubscribe()

	// никто не читает канал: промежуточные статусы вытесняются
	target.DispatchEvent(eventsource.NewEvent(adapter.EventConnecting, testServerURL))
	target.DispatchEvent(eventsource.NewEvent(eventsource.EventOpen, testServerURL))
	target.DispatchEvent(eventsource.NewEvent(eventsource.EventClose, ""))

	assert.Equal(t, models.DisconnectedStatus(), receive(t, ch))
	select {
	case s := <-ch:
		t.Fatalf("unexpected extra status %q", s)
	default:
	}
}

func TestStatusService_Close(t *testing.T) {
	handle, target := newEventedHandle(t, false)
	s := NewStatusService(handle, logger.Nop())

	ch, _ := s.Subscribe()
	s.Close()
	s.Close()

	_, ok := <-ch
	assert.False(t, ok)

	// после Close события хэндла больше не влияют на статус
	target.DispatchEvent(eventsource.NewEvent(eventsource.EventOpen, testServerURL))
	assert.Equal(t, models.DisconnectedStatus(), s.Current())

	late, _ := s.Subscribe()
	_, ok = <-late
	require.False(t, ok, "подписка после Close сразу закрыта")
}
