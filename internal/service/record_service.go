package service

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/spec-kit/change-adapter/internal/connector"
	"github.com/spec-kit/change-adapter/internal/normalize"
	apperrors "github.com/spec-kit/change-adapter/pkg/util"
)

// RecordService orchestrates single connector calls and normalization. It
// performs exactly one connector call per invocation, never retries, and
// propagates transport errors unchanged.
type RecordService struct {
	conn   connector.Connector
	logger *zap.Logger
}

// NewRecordService constructs the service.
func NewRecordService(conn connector.Connector, logger *zap.Logger) *RecordService {
	return &RecordService{conn: conn, logger: logger}
}

// CreateChangeInput carries the optional fields submitted when creating a
// change request. Nil fields are omitted from the request body.
type CreateChangeInput struct {
	Priority    *string `json:"priority,omitempty"`
	Description *string `json:"description,omitempty"`
	WorkStart   *string `json:"work_start,omitempty"`
	WorkEnd     *string `json:"work_end,omitempty"`
}

// ListRecords issues one GET and normalizes the response in list mode.
func (s *RecordService) ListRecords(ctx context.Context) (normalize.Outcome, error) {
	resp, err := s.conn.Get(ctx)
	if err != nil {
		return normalize.Outcome{}, err
	}

	outcome, err := normalize.Normalize(resp, normalize.ModeList)
	if err != nil {
		return normalize.Outcome{}, err
	}
	if outcome.IsSentinel() {
		s.logger.Warn("list response incomplete", zap.String("sentinel", outcome.Sentinel()))
	} else {
		s.logger.Debug("records listed", zap.Int("count", len(outcome.Records)))
	}
	return outcome, nil
}

// CreateRecord issues one POST and normalizes the response in single mode.
func (s *RecordService) CreateRecord(ctx context.Context, input CreateChangeInput) (normalize.Outcome, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return normalize.Outcome{}, apperrors.NewInternalError(err)
	}

	resp, err := s.conn.Post(ctx, body)
	if err != nil {
		return normalize.Outcome{}, err
	}

	outcome, err := normalize.Normalize(resp, normalize.ModeSingle)
	if err != nil {
		return normalize.Outcome{}, err
	}
	if outcome.IsSentinel() {
		s.logger.Warn("create response incomplete", zap.String("sentinel", outcome.Sentinel()))
	} else if outcome.Record != nil {
		s.logger.Info("record created", zap.Stringp("number", outcome.Record.ChangeTicketNumber))
	}
	return outcome, nil
}

// RecordLister is the probe-facing subset of RecordService.
type RecordLister interface {
	ListRecords(ctx context.Context) (normalize.Outcome, error)
}

var _ RecordLister = (*RecordService)(nil)
