package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/mcp-assistant/internal/logger"
	"github.com/MKhiriev/mcp-assistant/internal/service"
)

// connectWorker performs the launch-time connect in the background so the web
// server is already serving while the handshake runs. The result reaches the
// page through the status stream.
type connectWorker struct {
	catalog service.CatalogService
	timeout time.Duration
	logger  *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewConnectWorker connects and fetches the catalog once per Run. A positive
// timeout bounds the attempt; Stop cancels an attempt that is still running.
func NewConnectWorker(catalog service.CatalogService, timeout time.Duration, logger *logger.Logger) Worker {
	return &connectWorker{catalog: catalog, timeout: timeout, logger: logger}
}

func (c *connectWorker) Run(ctx context.Context) {
	var (
		connectCtx context.Context
		cancel     context.CancelFunc
	)
	if c.timeout > 0 {
		connectCtx, cancel = context.WithTimeout(ctx, c.timeout)
	} else {
		connectCtx, cancel = context.WithCancel(ctx)
	}

	c.mu.Lock()
	c.cancel = cancel
	c.wg.Add(1)
	c.mu.Unlock()

	go func() {
		defer c.wg.Done()
		defer cancel()

		c.logger.Info().Str("server_url", c.catalog.ServerURL()).Msg("connecting on launch")
		if _, err := c.catalog.ConnectAndFetch(connectCtx); err != nil {
			c.logger.Warn().Err(err).Msg("launch-time connect failed")
		}
	}()
}

func (c *connectWorker) Stop() {
	c.mu.Lock()
	cancel := c.cancel
	c.cancel = nil
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	c.wg.Wait()
}
