package normalize

import (
	"encoding/json"
	"strings"

	"github.com/spec-kit/change-adapter/internal/connector"
	"github.com/spec-kit/change-adapter/internal/domain"
	apperrors "github.com/spec-kit/change-adapter/pkg/util"
)

// Mode selects the expected shape of the remote result field.
type Mode int

const (
	// ModeList expects the result field to hold a collection of raw records.
	ModeList Mode = iota
	// ModeSingle expects the result field to hold exactly one raw record.
	ModeSingle
)

// Kind tags an Outcome.
type Kind int

const (
	// KindRecords carries normalized records.
	KindRecords Kind = iota
	// KindMissingBody marks a response that carried no body at all.
	KindMissingBody
	// KindMissingResult marks a parseable body without a result field.
	KindMissingResult
)

// Outcome is the tagged result of one normalization. Sentinel kinds are data,
// not errors: a reachable service returning an incomplete payload must stay
// distinguishable from an unreachable one.
type Outcome struct {
	Kind    Kind
	Records []domain.ChangeRecord
	Record  *domain.ChangeRecord
}

// IsSentinel reports whether the outcome stands in for absent data.
func (o Outcome) IsSentinel() bool {
	return o.Kind == KindMissingBody || o.Kind == KindMissingResult
}

// Sentinel returns the wire-compatible sentinel string for this outcome.
// Only meaningful when IsSentinel is true.
func (o Outcome) Sentinel() string {
	switch o.Kind {
	case KindMissingBody:
		return domain.SentinelMissingBody
	case KindMissingResult:
		return domain.SentinelMissingResult
	default:
		return ""
	}
}

type envelope struct {
	Result json.RawMessage `json:"result"`
}

// Normalize parses a raw transport response and maps it onto canonical
// change records.
//
// Missing body and missing result are sentinel outcomes. A body that is
// present but unparseable, or a result field that does not match the mode's
// expected shape, is a MALFORMED_BODY error. Unknown source fields are
// ignored; absent expected fields map to nil. Every returned record is a
// fresh value, never shared with a previous call or another list element.
func Normalize(resp *connector.Response, mode Mode) (Outcome, error) {
	if resp == nil || strings.TrimSpace(resp.Body) == "" {
		return Outcome{Kind: KindMissingBody}, nil
	}

	var env envelope
	if err := json.Unmarshal([]byte(resp.Body), &env); err != nil {
		return Outcome{}, apperrors.NewMalformedBodyError(err)
	}
	if len(env.Result) == 0 || string(env.Result) == "null" {
		return Outcome{Kind: KindMissingResult}, nil
	}

	switch mode {
	case ModeSingle:
		var raw domain.RawChangeRequest
		if err := json.Unmarshal(env.Result, &raw); err != nil {
			return Outcome{}, apperrors.NewMalformedBodyError(err)
		}
		record := raw.Canonical()
		return Outcome{Kind: KindRecords, Record: &record}, nil
	default:
		var raws []domain.RawChangeRequest
		if err := json.Unmarshal(env.Result, &raws); err != nil {
			return Outcome{}, apperrors.NewMalformedBodyError(err)
		}
		records := make([]domain.ChangeRecord, 0, len(raws))
		for _, raw := range raws {
			records = append(records, raw.Canonical())
		}
		return Outcome{Kind: KindRecords, Records: records}, nil
	}
}
