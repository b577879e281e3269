package domain

import "time"

// StatusTransition is an immutable audit entry for one emitted status event.
type StatusTransition struct {
	ID        string
	AdapterID string
	Status    Status
	EventID   string
	CreatedAt time.Time
}
