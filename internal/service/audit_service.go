package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/change-adapter/internal/domain"
	"github.com/spec-kit/change-adapter/internal/events"
	"github.com/spec-kit/change-adapter/internal/repository"
)

// AuditService persists every emitted status event as a transition row.
type AuditService struct {
	dispatcher events.Dispatcher
	statuses   repository.StatusRepository
	logger     *zap.Logger
}

// NewAuditService creates the service.
func NewAuditService(dispatcher events.Dispatcher, statuses repository.StatusRepository, logger *zap.Logger) *AuditService {
	return &AuditService{
		dispatcher: dispatcher,
		statuses:   statuses,
		logger:     logger,
	}
}

// RegisterHandlers subscribes to status events.
func (s *AuditService) RegisterHandlers() {
	if s.dispatcher == nil {
		return
	}
	s.dispatcher.Subscribe(events.EventStatusOnline, s.handleStatusEvent)
	s.dispatcher.Subscribe(events.EventStatusOffline, s.handleStatusEvent)
}

func (s *AuditService) handleStatusEvent(ctx context.Context, event events.Event) error {
	transition := &domain.StatusTransition{
		AdapterID: event.AdapterID,
		Status:    event.Status,
		EventID:   event.ID,
	}
	if err := s.statuses.Create(ctx, transition); err != nil {
		s.logger.Warn("status audit write failed",
			zap.String("status", event.Status.String()),
			zap.Error(err))
		return err
	}
	s.logger.Debug("status audit recorded",
		zap.String("status", event.Status.String()),
		zap.String("adapter_id", event.AdapterID))
	return nil
}
