package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/change-adapter/internal/connector"
	"github.com/spec-kit/change-adapter/internal/domain"
	apperrors "github.com/spec-kit/change-adapter/pkg/util"
)

const listBody = `{
	"result": [
		{"number": "CHG01", "active": true, "priority": "1", "description": "upgrade db", "work_start": "2026-01-01T00:00:00Z", "work_end": "2026-01-02T00:00:00Z", "sys_id": "abc"},
		{"number": "CHG02", "active": false, "priority": "3", "description": "rotate certs", "work_start": "2026-02-01T00:00:00Z", "work_end": "2026-02-02T00:00:00Z", "sys_id": "def"}
	]
}`

func TestNormalize_ListMapsEveryEntry(t *testing.T) {
	resp := &connector.Response{StatusCode: 200, Body: listBody}

	outcome, err := Normalize(resp, ModeList)
	require.NoError(t, err)
	require.Equal(t, KindRecords, outcome.Kind)
	require.Len(t, outcome.Records, 2)

	first := outcome.Records[0]
	require.NotNil(t, first.ChangeTicketNumber)
	assert.Equal(t, "CHG01", *first.ChangeTicketNumber)
	require.NotNil(t, first.Active)
	assert.True(t, *first.Active)
	require.NotNil(t, first.ChangeTicketKey)
	assert.Equal(t, "abc", *first.ChangeTicketKey)

	second := outcome.Records[1]
	require.NotNil(t, second.ChangeTicketNumber)
	assert.Equal(t, "CHG02", *second.ChangeTicketNumber)
}

func TestNormalize_RecordsAreIndependentValues(t *testing.T) {
	resp := &connector.Response{StatusCode: 200, Body: listBody}

	outcome, err := Normalize(resp, ModeList)
	require.NoError(t, err)
	require.Len(t, outcome.Records, 2)

	// Mutating one record must not leak into its sibling: the naive
	// one-template-per-loop implementation fails this.
	*outcome.Records[0].Priority = "9"
	mutated := "overwritten"
	outcome.Records[0].Description = &mutated

	assert.Equal(t, "3", *outcome.Records[1].Priority)
	assert.Equal(t, "rotate certs", *outcome.Records[1].Description)
}

func TestNormalize_SamePayloadTwiceYieldsNonAliasedRecords(t *testing.T) {
	resp := &connector.Response{StatusCode: 200, Body: listBody}

	a, err := Normalize(resp, ModeList)
	require.NoError(t, err)
	b, err := Normalize(resp, ModeList)
	require.NoError(t, err)

	require.Equal(t, a.Records, b.Records)

	*a.Records[0].Priority = "changed"
	assert.Equal(t, "1", *b.Records[0].Priority)
}

func TestNormalize_MissingBody(t *testing.T) {
	cases := []struct {
		name string
		resp *connector.Response
	}{
		{"nil response", nil},
		{"empty body", &connector.Response{StatusCode: 200, Body: ""}},
		{"whitespace body", &connector.Response{StatusCode: 200, Body: "   \n"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			outcome, err := Normalize(tc.resp, ModeList)
			require.NoError(t, err)
			assert.Equal(t, KindMissingBody, outcome.Kind)
			assert.True(t, outcome.IsSentinel())
			assert.Equal(t, domain.SentinelMissingBody, outcome.Sentinel())
		})
	}
}

func TestNormalize_MissingResult(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"no result field", `{"rows": []}`},
		{"null result", `{"result": null}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			outcome, err := Normalize(&connector.Response{StatusCode: 200, Body: tc.body}, ModeList)
			require.NoError(t, err)
			assert.Equal(t, KindMissingResult, outcome.Kind)
			assert.Equal(t, domain.SentinelMissingResult, outcome.Sentinel())
		})
	}
}

func TestNormalize_MalformedBodyIsErrorNotSentinel(t *testing.T) {
	cases := []struct {
		name string
		body string
		mode Mode
	}{
		{"invalid json", `{"result": [`, ModeList},
		{"top level not object", `[1,2,3]`, ModeList},
		{"list result in single mode", `{"result": [{"number": "CHG01"}]}`, ModeSingle},
		{"object result in list mode", `{"result": {"number": "CHG01"}}`, ModeList},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Normalize(&connector.Response{StatusCode: 200, Body: tc.body}, tc.mode)
			require.Error(t, err)
			assert.True(t, apperrors.IsMalformedBody(err))
		})
	}
}

func TestNormalize_EmptyResultListIsNotASentinel(t *testing.T) {
	outcome, err := Normalize(&connector.Response{StatusCode: 200, Body: `{"result": []}`}, ModeList)
	require.NoError(t, err)
	assert.Equal(t, KindRecords, outcome.Kind)
	assert.False(t, outcome.IsSentinel())
	assert.Empty(t, outcome.Records)
}

func TestNormalize_SingleMapsAllSevenFields(t *testing.T) {
	body := `{"result": {"number": "CHG01", "active": true, "priority": "1", "description": "d", "work_start": "t1", "work_end": "t2", "sys_id": "abc"}}`

	outcome, err := Normalize(&connector.Response{StatusCode: 201, Body: body}, ModeSingle)
	require.NoError(t, err)
	require.NotNil(t, outcome.Record)

	record := outcome.Record
	require.NotNil(t, record.ChangeTicketNumber)
	assert.Equal(t, "CHG01", *record.ChangeTicketNumber)
	require.NotNil(t, record.Active)
	assert.True(t, *record.Active)
	require.NotNil(t, record.Priority)
	assert.Equal(t, "1", *record.Priority)
	require.NotNil(t, record.Description)
	assert.Equal(t, "d", *record.Description)
	require.NotNil(t, record.WorkStart)
	assert.Equal(t, "t1", *record.WorkStart)
	require.NotNil(t, record.WorkEnd)
	assert.Equal(t, "t2", *record.WorkEnd)
	require.NotNil(t, record.ChangeTicketKey)
	assert.Equal(t, "abc", *record.ChangeTicketKey)
}

func TestNormalize_MissingFieldsStayNilAndUnknownFieldsAreIgnored(t *testing.T) {
	body := `{"result": [{"number": "CHG03", "made_up_field": 42, "assignment_group": "ops"}]}`

	outcome, err := Normalize(&connector.Response{StatusCode: 200, Body: body}, ModeList)
	require.NoError(t, err)
	require.Len(t, outcome.Records, 1)

	record := outcome.Records[0]
	require.NotNil(t, record.ChangeTicketNumber)
	assert.Equal(t, "CHG03", *record.ChangeTicketNumber)
	assert.Nil(t, record.Active)
	assert.Nil(t, record.Priority)
	assert.Nil(t, record.Description)
	assert.Nil(t, record.WorkStart)
	assert.Nil(t, record.WorkEnd)
	assert.Nil(t, record.ChangeTicketKey)
}
