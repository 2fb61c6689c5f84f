package domain

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		want    Status
		wantErr bool
	}{
		{"applied", "applied", StatusApplied, false},
		{"interviewing", "interviewing", StatusInterviewing, false},
		{"offer", "offer", StatusOffer, false},
		{"rejected", "rejected", StatusRejected, false},
		{"uppercase rejected", "Applied", Status{}, true},
		{"unknown token", "withdrawn", Status{}, true},
		{"empty token", "", Status{}, true},
		{"padded token", " offer", Status{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := StatusFromToken(tt.token)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidStatus)
				assert.Equal(t, fmt.Sprintf("invalid status %q", tt.token), err.Error())
				assert.True(t, got.IsZero())

				_, err = ParseStatus(tt.token)
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.token, got.String())

			parsed, err := ParseStatus(tt.token)
			require.NoError(t, err)
			assert.Equal(t, got, parsed)
		})
	}
}

func TestStatus_ValuesAndNames(t *testing.T) {
	require.Len(t, StatusNames, len(StatusValues))
	for i, s := range StatusValues {
		assert.Equal(t, StatusNames[i], s.String())
		assert.Equal(t, i+1, s.Index())
		assert.Equal(t, s, MustStatus(s.String()))
	}
	assert.Panics(t, func() { MustStatus("blah") })
	assert.True(t, Status{}.IsZero())
	assert.Equal(t, 0, Status{}.Index())
}

func TestStatus_OrDefault(t *testing.T) {
	assert.Equal(t, StatusApplied, Status{}.OrDefault())
	assert.Equal(t, StatusOffer, StatusOffer.OrDefault())
}

func TestStatus_JSON(t *testing.T) {
	type wrapper struct {
		Status Status `json:"status"`
	}

	data, err := json.Marshal(wrapper{Status: StatusInterviewing})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"interviewing"}`, string(data))

	var w wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"status":"rejected"}`), &w))
	assert.Equal(t, StatusRejected, w.Status)

	err = json.Unmarshal([]byte(`{"status":"ghosted"}`), &w)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid status: ghosted")
}

func TestStatus_SQL(t *testing.T) {
	v, err := StatusOffer.Value()
	require.NoError(t, err)
	assert.Equal(t, "offer", v)

	var s Status
	require.NoError(t, s.Scan("interviewing"))
	assert.Equal(t, StatusInterviewing, s)

	require.NoError(t, s.Scan([]byte("applied")))
	assert.Equal(t, StatusApplied, s)

	require.NoError(t, s.Scan("offer"))
	assert.Error(t, s.Scan(42))
	assert.Error(t, s.Scan("archived"))
	assert.Equal(t, StatusOffer, s, "failed scan leaves status untouched")

	require.NoError(t, s.Scan(nil))
	assert.Equal(t, StatusApplied, s)
}

func TestStatus_UnmarshalFlag(t *testing.T) {
	var s Status
	require.NoError(t, s.UnmarshalFlag("offer"))
	assert.Equal(t, StatusOffer, s)
	assert.ErrorIs(t, s.UnmarshalFlag("OFFER"), ErrInvalidStatus)
	assert.Equal(t, StatusOffer, s, "failed flag parsing leaves status untouched")

	v, err := s.MarshalFlag()
	require.NoError(t, err)
	assert.Equal(t, "offer", v)
	v, err = Status{}.MarshalFlag()
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestJob_URLOr(t *testing.T) {
	u := "https://example.com/jobs/1"
	empty := ""
	assert.Equal(t, u, Job{URL: &u}.URLOr("-"))
	assert.Equal(t, "-", Job{}.URLOr("-"))
	assert.Equal(t, "-", Job{URL: &empty}.URLOr("-"))
}

func TestJob_Equal(t *testing.T) {
	u1, u2 := "https://example.com/jobs/1", "https://example.com/jobs/1"
	ts := time.Date(2026, 10, 17, 9, 15, 0, 0, time.UTC)
	base := Job{ID: 1, Company: "Acme", Role: "SRE", URL: &u1, Status: StatusOffer, CreatedAt: ts}

	same := base
	same.URL = &u2
	same.CreatedAt = ts.In(time.FixedZone("CET", 3600))
	assert.True(t, base.Equal(same), "url compared by content, time by instant")
	assert.True(t, Job{}.Equal(Job{}))

	other := "https://example.com/jobs/2"
	tbl := []struct {
		name   string
		modify func(j *Job)
	}{
		{"id", func(j *Job) { j.ID = 2 }},
		{"company", func(j *Job) { j.Company = "Globex" }},
		{"role", func(j *Job) { j.Role = "Backend" }},
		{"url differs", func(j *Job) { j.URL = &other }},
		{"url missing", func(j *Job) { j.URL = nil }},
		{"status", func(j *Job) { j.Status = StatusRejected }},
		{"created", func(j *Job) { j.CreatedAt = ts.Add(time.Second) }},
	}
	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			changed := base
			tt.modify(&changed)
			assert.False(t, base.Equal(changed))
			assert.False(t, changed.Equal(base))
		})
	}
}
