package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/change-adapter/internal/domain"
	"github.com/spec-kit/change-adapter/internal/normalize"
)

func strPtr(s string) *string { return &s }

func TestEncodeListOutcome_ThreeCasesStayDistinguishable(t *testing.T) {
	records := normalize.Outcome{
		Kind:    normalize.KindRecords,
		Records: []domain.ChangeRecord{{ChangeTicketNumber: strPtr("CHG01")}},
	}
	empty := normalize.Outcome{Kind: normalize.KindRecords}
	missingBody := normalize.Outcome{Kind: normalize.KindMissingBody}
	missingResult := normalize.Outcome{Kind: normalize.KindMissingResult}

	encodedRecords := EncodeListOutcome(records)
	require.Len(t, encodedRecords, 1)
	_, isRecord := encodedRecords[0].(domain.ChangeRecord)
	assert.True(t, isRecord)

	assert.Empty(t, EncodeListOutcome(empty))
	assert.NotNil(t, EncodeListOutcome(empty))

	assert.Equal(t, []any{domain.SentinelMissingBody}, EncodeListOutcome(missingBody))
	assert.Equal(t, []any{domain.SentinelMissingResult}, EncodeListOutcome(missingResult))
}

func TestEncodeSingleOutcome(t *testing.T) {
	record := domain.ChangeRecord{ChangeTicketNumber: strPtr("CHG02")}
	got := EncodeSingleOutcome(normalize.Outcome{Kind: normalize.KindRecords, Record: &record})
	require.NotNil(t, got.ChangeTicketNumber)
	assert.Equal(t, "CHG02", *got.ChangeTicketNumber)

	// Sentinel outcomes decode to an all-null record at the boundary.
	blank := EncodeSingleOutcome(normalize.Outcome{Kind: normalize.KindMissingResult})
	assert.Equal(t, domain.ChangeRecord{}, blank)
}

func TestCreateRecordRequest_Input(t *testing.T) {
	req := CreateRecordRequest{
		Priority:    strPtr("1"),
		Description: strPtr("maintenance"),
	}
	input := req.Input()
	assert.Equal(t, "1", *input.Priority)
	assert.Equal(t, "maintenance", *input.Description)
	assert.Nil(t, input.WorkStart)
	assert.Nil(t, input.WorkEnd)
}
