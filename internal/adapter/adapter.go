package adapter

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/change-adapter/internal/config"
	"github.com/spec-kit/change-adapter/internal/connector"
	"github.com/spec-kit/change-adapter/internal/events"
	"github.com/spec-kit/change-adapter/internal/health"
	"github.com/spec-kit/change-adapter/internal/normalize"
	"github.com/spec-kit/change-adapter/internal/observability"
	"github.com/spec-kit/change-adapter/internal/service"
)

// Adapter is the facade the orchestration host interacts with. It owns the
// connector, the record service and the health monitor, and carries an
// immutable instance identity attached to every emitted status event.
type Adapter struct {
	id         string
	records    *service.RecordService
	monitor    *health.Monitor
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// Dependencies allows callers to override collaborators; zero values get
// production defaults.
type Dependencies struct {
	Connector  connector.Connector
	Dispatcher events.Dispatcher
	Metrics    *observability.Metrics
}

// New constructs an adapter instance. The identity comes from configuration
// when set, otherwise a fresh uuid is assigned.
func New(cfg *config.Config, logger *zap.Logger, deps Dependencies) *Adapter {
	id := cfg.App.AdapterID
	if id == "" {
		id = uuid.NewString()
	}

	conn := deps.Connector
	if conn == nil {
		conn = connector.NewServiceNowConnector(cfg.ServiceNow, logger)
	}
	dispatcher := deps.Dispatcher
	if dispatcher == nil {
		dispatcher = events.NewInMemoryDispatcher()
	}
	metrics := deps.Metrics
	if metrics == nil {
		metrics = observability.NewMetrics()
	}

	records := service.NewRecordService(conn, logger)
	monitor := health.NewMonitor(records, dispatcher, metrics, logger, id)

	return &Adapter{
		id:         id,
		records:    records,
		monitor:    monitor,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// ID returns the adapter instance identity.
func (a *Adapter) ID() string {
	return a.id
}

// Subscribe registers a handler for emitted status events.
func (a *Adapter) Subscribe(eventType events.EventType, handler events.EventHandler) {
	a.dispatcher.Subscribe(eventType, handler)
}

// Connect triggers exactly one health probe. It returns nothing: the outcome
// is observable only through the emitted ONLINE/OFFLINE event.
func (a *Adapter) Connect(ctx context.Context) {
	if _, status, err := a.monitor.Probe(ctx); err != nil {
		a.logger.Info("connect probe finished", zap.String("status", status.String()), zap.Error(err))
	} else {
		a.logger.Info("connect probe finished", zap.String("status", status.String()))
	}
}

// Probe runs one health probe and reports its classification.
func (a *Adapter) Probe(ctx context.Context) (normalize.Outcome, error) {
	outcome, _, err := a.monitor.Probe(ctx)
	return outcome, err
}

// Monitor exposes the health monitor for periodic probing.
func (a *Adapter) Monitor() *health.Monitor {
	return a.monitor
}

// GetRecords passes through to the record service.
func (a *Adapter) GetRecords(ctx context.Context) (normalize.Outcome, error) {
	return a.records.ListRecords(ctx)
}

// CreateRecord passes through to the record service.
func (a *Adapter) CreateRecord(ctx context.Context, input service.CreateChangeInput) (normalize.Outcome, error) {
	return a.records.CreateRecord(ctx, input)
}
