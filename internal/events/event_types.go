package events

import (
	"time"

	"github.com/spec-kit/change-adapter/internal/domain"
)

// EventType enumerates supported event identifiers. Status events are named
// after the status they announce so subscribers can register per status.
type EventType string

const (
	EventStatusOnline  EventType = "ONLINE"
	EventStatusOffline EventType = "OFFLINE"
)

// StatusEventType returns the event type announcing the given status.
func StatusEventType(status domain.Status) EventType {
	if status == domain.StatusOnline {
		return EventStatusOnline
	}
	return EventStatusOffline
}

// Event represents a status event emitted by the health monitor.
type Event struct {
	ID        string        `json:"id"`
	Type      EventType     `json:"type"`
	AdapterID string        `json:"adapter_id"`
	Status    domain.Status `json:"status"`
	Timestamp time.Time     `json:"timestamp"`
	Payload   interface{}   `json:"payload,omitempty"`
}

// StatusPayload carries the adapter identity on every status event.
type StatusPayload struct {
	ID string `json:"id"`
}
