package health

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/change-adapter/internal/domain"
	"github.com/spec-kit/change-adapter/internal/events"
	"github.com/spec-kit/change-adapter/internal/normalize"
	"github.com/spec-kit/change-adapter/internal/observability"
	"github.com/spec-kit/change-adapter/internal/service"
)

// Monitor classifies remote reachability from single probe outcomes.
//
// A probe is one list call: a transport or parse error means OFFLINE, any
// normalized outcome means ONLINE. Sentinel and empty-list outcomes still
// count as reachable; reachability is judged on transport success, not on
// business-data completeness. Status is never stored for outside readers, it
// is re-derived on every probe and observable only through emitted events.
type Monitor struct {
	records    service.RecordLister
	dispatcher events.Dispatcher
	metrics    *observability.Metrics
	logger     *zap.Logger
	adapterID  string

	mu   sync.Mutex
	last *domain.Status
}

// NewMonitor constructs a monitor for one adapter instance.
func NewMonitor(records service.RecordLister, dispatcher events.Dispatcher, metrics *observability.Metrics, logger *zap.Logger, adapterID string) *Monitor {
	return &Monitor{
		records:    records,
		dispatcher: dispatcher,
		metrics:    metrics,
		logger:     logger,
		adapterID:  adapterID,
	}
}

// Probe runs one health probe, emits exactly one status event, and returns
// the probe's outcome so callers can inspect what the remote answered.
func (m *Monitor) Probe(ctx context.Context) (normalize.Outcome, domain.Status, error) {
	outcome, err := m.records.ListRecords(ctx)

	status := domain.StatusOnline
	if err != nil {
		status = domain.StatusOffline
	}

	m.logTransition(status)
	m.metrics.RecordProbe(status)

	event := events.Event{
		ID:        uuid.NewString(),
		Type:      events.StatusEventType(status),
		AdapterID: m.adapterID,
		Status:    status,
		Timestamp: time.Now().UTC(),
		Payload:   events.StatusPayload{ID: m.adapterID},
	}
	if publishErr := m.dispatcher.Publish(ctx, event); publishErr != nil {
		m.logger.Warn("status event publish failed", zap.Error(publishErr))
	}

	if err != nil {
		m.logger.Warn("probe failed", zap.Error(err))
		return normalize.Outcome{}, status, err
	}
	return outcome, status, nil
}

func (m *Monitor) logTransition(status domain.Status) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.last != nil && *m.last != status {
		m.logger.Info("status transition",
			zap.String("from", m.last.String()),
			zap.String("to", status.String()),
			zap.String("adapter_id", m.adapterID))
	}
	m.last = &status
}
