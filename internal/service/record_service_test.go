package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/change-adapter/internal/connector"
	"github.com/spec-kit/change-adapter/internal/normalize"
	apperrors "github.com/spec-kit/change-adapter/pkg/util"
)

type mockConnector struct {
	getCalls  int
	postCalls int
	lastBody  []byte
	resp      *connector.Response
	err       error
}

func (m *mockConnector) Get(ctx context.Context) (*connector.Response, error) {
	m.getCalls++
	if m.err != nil {
		return nil, m.err
	}
	return m.resp, nil
}

func (m *mockConnector) Post(ctx context.Context, body []byte) (*connector.Response, error) {
	m.postCalls++
	m.lastBody = body
	if m.err != nil {
		return nil, m.err
	}
	return m.resp, nil
}

func strPtr(s string) *string { return &s }

func TestRecordService_ListRecords(t *testing.T) {
	conn := &mockConnector{resp: &connector.Response{
		StatusCode: 200,
		Body:       `{"result": [{"number": "CHG01", "sys_id": "abc"}, {"number": "CHG02", "sys_id": "def"}]}`,
	}}
	svc := NewRecordService(conn, zap.NewNop())

	outcome, err := svc.ListRecords(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, conn.getCalls)
	require.Len(t, outcome.Records, 2)
	assert.Equal(t, "CHG01", *outcome.Records[0].ChangeTicketNumber)
}

func TestRecordService_ListRecordsPropagatesTransportError(t *testing.T) {
	wantErr := apperrors.NewTransportError("remote service unreachable", nil)
	conn := &mockConnector{err: wantErr}
	svc := NewRecordService(conn, zap.NewNop())

	outcome, err := svc.ListRecords(context.Background())
	require.Error(t, err)
	assert.Same(t, wantErr, err)
	assert.Empty(t, outcome.Records)
	assert.Equal(t, 1, conn.getCalls)
}

func TestRecordService_ListRecordsSurfacesSentinels(t *testing.T) {
	cases := []struct {
		name string
		body string
		want normalize.Kind
	}{
		{"missing body", "", normalize.KindMissingBody},
		{"missing result", `{"other": 1}`, normalize.KindMissingResult},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			conn := &mockConnector{resp: &connector.Response{StatusCode: 200, Body: tc.body}}
			svc := NewRecordService(conn, zap.NewNop())

			outcome, err := svc.ListRecords(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tc.want, outcome.Kind)
		})
	}
}

func TestRecordService_ListRecordsMalformedBodyIsError(t *testing.T) {
	conn := &mockConnector{resp: &connector.Response{StatusCode: 200, Body: `not json`}}
	svc := NewRecordService(conn, zap.NewNop())

	_, err := svc.ListRecords(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsMalformedBody(err))
}

func TestRecordService_CreateRecord(t *testing.T) {
	conn := &mockConnector{resp: &connector.Response{
		StatusCode: 201,
		Body:       `{"result": {"number": "CHG10", "active": true, "sys_id": "xyz"}}`,
	}}
	svc := NewRecordService(conn, zap.NewNop())

	input := CreateChangeInput{
		Priority:    strPtr("2"),
		Description: strPtr("patch window"),
	}
	outcome, err := svc.CreateRecord(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, 1, conn.postCalls)
	require.NotNil(t, outcome.Record)
	assert.Equal(t, "CHG10", *outcome.Record.ChangeTicketNumber)

	var sent map[string]string
	require.NoError(t, json.Unmarshal(conn.lastBody, &sent))
	assert.Equal(t, "2", sent["priority"])
	assert.Equal(t, "patch window", sent["description"])
	assert.NotContains(t, sent, "work_start")
}

func TestRecordService_CreateRecordPropagatesTransportError(t *testing.T) {
	wantErr := apperrors.NewRemoteStatusError(503)
	conn := &mockConnector{err: wantErr}
	svc := NewRecordService(conn, zap.NewNop())

	_, err := svc.CreateRecord(context.Background(), CreateChangeInput{})
	require.Error(t, err)
	assert.Same(t, wantErr, err)
	assert.Equal(t, 1, conn.postCalls)
}

func TestRecordService_NoCrossContaminationBetweenCalls(t *testing.T) {
	conn := &mockConnector{resp: &connector.Response{
		StatusCode: 201,
		Body:       `{"result": {"number": "CHG01", "active": true, "priority": "1", "description": "d", "work_start": "t1", "work_end": "t2", "sys_id": "abc"}}`,
	}}
	svc := NewRecordService(conn, zap.NewNop())

	first, err := svc.CreateRecord(context.Background(), CreateChangeInput{})
	require.NoError(t, err)

	conn.resp = &connector.Response{StatusCode: 201, Body: `{"result": {"number": "CHG02"}}`}
	second, err := svc.CreateRecord(context.Background(), CreateChangeInput{})
	require.NoError(t, err)

	// The second record must not inherit any field from the first call.
	assert.Equal(t, "CHG02", *second.Record.ChangeTicketNumber)
	assert.Nil(t, second.Record.Active)
	assert.Nil(t, second.Record.Priority)
	assert.Nil(t, second.Record.ChangeTicketKey)
	assert.Equal(t, "CHG01", *first.Record.ChangeTicketNumber)
}
