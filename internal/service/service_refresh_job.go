package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/mcp-assistant/internal/logger"
)

// DefaultRefreshInterval is used by Start when interval is not positive.
const DefaultRefreshInterval = time.Minute

type refreshJob struct {
	catalog CatalogService
	logger  *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshJob creates a RefreshJob that calls catalog.Refresh on a ticker.
// The job is idle until Start is called.
func NewRefreshJob(catalog CatalogService, log *logger.Logger) RefreshJob {
	return &refreshJob{catalog: catalog, logger: log}
}

// Start implements RefreshJob. Ticks that find the handle disconnected are
// skipped; a reconnect made elsewhere resumes refreshing on the next tick.
func (j *refreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.tick(jobCtx)
			}
		}
	}()
}

// Stop implements RefreshJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited.
func (j *refreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *refreshJob) tick(ctx context.Context) {
	if !j.catalog.IsConnected() {
		return
	}
	if _, err := j.catalog.Refresh(ctx); err != nil {
		j.logger.Warn().Err(err).Msg("catalog refresh failed")
	}
}
