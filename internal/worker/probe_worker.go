package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/change-adapter/internal/health"
)

// ProbeWorker drives the health monitor on a fixed interval.
type ProbeWorker struct {
	monitor  *health.Monitor
	interval time.Duration
	logger   *zap.Logger
}

// NewProbeWorker constructs the worker; a zero interval disables it.
func NewProbeWorker(monitor *health.Monitor, interval time.Duration, logger *zap.Logger) *ProbeWorker {
	return &ProbeWorker{monitor: monitor, interval: interval, logger: logger}
}

// Run probes until the context is cancelled. Probe errors are already
// classified and emitted by the monitor, so they are not treated as fatal.
func (w *ProbeWorker) Run(ctx context.Context) {
	if w.interval <= 0 {
		w.logger.Info("periodic probe disabled")
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info("probe worker started", zap.Duration("interval", w.interval))
	for {
		select {
		case <-ctx.Done():
			w.logger.Info("probe worker stopped")
			return
		case <-ticker.C:
			if _, _, err := w.monitor.Probe(ctx); err != nil {
				w.logger.Debug("periodic probe reported offline", zap.Error(err))
			}
		}
	}
}
