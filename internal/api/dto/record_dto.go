package dto

import (
	"time"

	"github.com/spec-kit/change-adapter/internal/domain"
	"github.com/spec-kit/change-adapter/internal/normalize"
	"github.com/spec-kit/change-adapter/internal/service"
)

// CreateRecordRequest payload.
type CreateRecordRequest struct {
	Priority    *string `json:"priority"`
	Description *string `json:"description"`
	WorkStart   *string `json:"work_start"`
	WorkEnd     *string `json:"work_end"`
}

// Input converts the request to the service-level shape.
func (r CreateRecordRequest) Input() service.CreateChangeInput {
	return service.CreateChangeInput{
		Priority:    r.Priority,
		Description: r.Description,
		WorkStart:   r.WorkStart,
		WorkEnd:     r.WorkEnd,
	}
}

// TokenRequest payload.
type TokenRequest struct {
	APIKey string `json:"api_key"`
}

// TokenResponse payload.
type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// StatusTransitionResponse is one audit entry.
type StatusTransitionResponse struct {
	ID        string    `json:"id"`
	AdapterID string    `json:"adapter_id"`
	Status    string    `json:"status"`
	EventID   string    `json:"event_id"`
	CreatedAt time.Time `json:"created_at"`
}

// FromTransition maps an audit entry to its response shape.
func FromTransition(t domain.StatusTransition) StatusTransitionResponse {
	return StatusTransitionResponse{
		ID:        t.ID,
		AdapterID: t.AdapterID,
		Status:    t.Status.String(),
		EventID:   t.EventID,
		CreatedAt: t.CreatedAt,
	}
}

// EncodeListOutcome renders a list outcome in the wire-compatible shape: a
// sentinel outcome becomes a single sentinel string standing in for records,
// everything else is the records themselves. An empty result list stays an
// empty array, distinguishable from both sentinels and errors.
func EncodeListOutcome(outcome normalize.Outcome) []any {
	if outcome.IsSentinel() {
		return []any{outcome.Sentinel()}
	}
	encoded := make([]any, 0, len(outcome.Records))
	for _, record := range outcome.Records {
		encoded = append(encoded, record)
	}
	return encoded
}

// EncodeSingleOutcome renders a single-record outcome. Sentinel outcomes
// decode to a record with every field null, matching the upstream contract
// for creates against an incomplete response.
func EncodeSingleOutcome(outcome normalize.Outcome) domain.ChangeRecord {
	if outcome.Record != nil {
		return *outcome.Record
	}
	return domain.ChangeRecord{}
}
