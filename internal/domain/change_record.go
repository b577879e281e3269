package domain

// ChangeRecord is the canonical change-request shape all remote payloads are
// normalized into. Every field is optional: a field stays nil unless the
// source payload carried the corresponding value. Instances are allocated
// fresh per normalization and owned by the caller.
type ChangeRecord struct {
	ChangeTicketNumber *string `json:"change_ticket_number"`
	Active             *bool   `json:"active"`
	Priority           *string `json:"priority"`
	Description        *string `json:"description"`
	WorkStart          *string `json:"work_start"`
	WorkEnd            *string `json:"work_end"`
	ChangeTicketKey    *string `json:"change_ticket_key"`
}

// RawChangeRequest mirrors the field names the remote table API uses.
// Unknown remote fields are dropped during decoding; absent fields stay nil.
type RawChangeRequest struct {
	Number      *string `json:"number"`
	Active      *bool   `json:"active"`
	Priority    *string `json:"priority"`
	Description *string `json:"description"`
	WorkStart   *string `json:"work_start"`
	WorkEnd     *string `json:"work_end"`
	SysID       *string `json:"sys_id"`
}

// Canonical maps a raw change request onto a fresh ChangeRecord.
func (r RawChangeRequest) Canonical() ChangeRecord {
	return ChangeRecord{
		ChangeTicketNumber: r.Number,
		Active:             r.Active,
		Priority:           r.Priority,
		Description:        r.Description,
		WorkStart:          r.WorkStart,
		WorkEnd:            r.WorkEnd,
		ChangeTicketKey:    r.SysID,
	}
}
