package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/mcp-assistant/internal/logger"
	"github.com/MKhiriev/mcp-assistant/internal/service"
)

type refreshWorker struct {
	job      service.RefreshJob
	interval time.Duration
	logger   *logger.Logger
}

// NewRefreshWorker runs job every interval. It returns nil when interval is
// not positive, which [NewWorkers] skips.
func NewRefreshWorker(job service.RefreshJob, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		return nil
	}
	return &refreshWorker{job: job, interval: interval, logger: logger}
}

func (r *refreshWorker) Run(ctx context.Context) {
	r.logger.Info().Dur("interval", r.interval).Msg("starting catalog refresh worker")
	r.job.Start(ctx, r.interval)
}

func (r *refreshWorker) Stop() {
	r.job.Stop()
	r.logger.Info().Msg("catalog refresh worker stopped")
}
