// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync"

	"github.com/MKhiriev/mcp-assistant/internal/adapter"
	"github.com/MKhiriev/mcp-assistant/internal/eventsource"
	"github.com/MKhiriev/mcp-assistant/internal/logger"
	"github.com/MKhiriev/mcp-assistant/models"
)

type statusService struct {
	logger *logger.Logger

	mu      sync.Mutex
	current models.Status
	subs    map[int]chan models.Status
	nextID  int
	closed  bool

	detach []func()
}

// NewStatusService creates a StatusService listening to handle's lifecycle
// events. The initial status follows handle.IsConnected.
func NewStatusService(handle adapter.Handle, log *logger.Logger) StatusService {
	s := &statusService{
		logger:  log,
		current: models.DisconnectedStatus(),
		subs:    make(map[int]chan models.Status),
	}
	if handle.IsConnected() {
		s.current = models.ConnectedStatus()
	}

	s.detach = []func(){
		handle.AddEventListener(adapter.EventConnecting, func(eventsource.Event) {
			s.set(models.ConnectingStatus())
		}),
		handle.AddEventListener(eventsource.EventOpen, func(eventsource.Event) {
			s.set(models.ConnectedStatus())
		}),
		handle.AddEventListener(eventsource.EventError, func(e eventsource.Event) {
			s.set(models.ErrorStatus(e.Data))
		}),
		handle.AddEventListener(eventsource.EventClose, func(eventsource.Event) {
			s.set(models.DisconnectedStatus())
		}),
	}

	return s
}

func (s *statusService) Current() models.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *statusService) Fail(err error) {
	if err == nil {
		return
	}
	s.set(models.ErrorStatus(err.Error()))
}

func (s *statusService) Subscribe() (<-chan models.Status, func()) {
	ch := make(chan models.Status, 1)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		close(ch)
		return ch, func() {}
	}

	id := s.nextID
	s.nextID++
	s.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if sub, ok := s.subs[id]; ok {
				delete(s.subs, id)
				close(sub)
			}
		})
	}
}

func (s *statusService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true

	for _, remove := range s.detach {
		remove()
	}
	for id, ch := range s.subs {
		delete(s.subs, id)
		close(ch)
	}
}

func (s *statusService) set(status models.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.current = status
	s.logger.Debug().Str("status", status.String()).Msg("connection status changed")

	for _, ch := range s.subs {
		// keep only the newest status for slow readers
		select {
		case <-ch:
		default:
		}
		ch <- status
	}
}
