package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPagination(t *testing.T) {
	cases := []struct {
		name  string
		total uint64
		page  int
		limit int
		want  Pagination
	}{
		{"empty", 0, 1, 10, Pagination{Total: 0, Page: 1, Limit: 10, TotalPages: 0}},
		{"exact pages", 20, 1, 10, Pagination{Total: 20, Page: 1, Limit: 10, TotalPages: 2, HasNext: true}},
		{"partial last page", 21, 3, 10, Pagination{Total: 21, Page: 3, Limit: 10, TotalPages: 3, HasPrev: true}},
		{"page past the end", 5, 4, 10, Pagination{Total: 5, Page: 4, Limit: 10, TotalPages: 1, HasPrev: true}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NewPagination(tc.total, tc.page, tc.limit))
		})
	}
}

func TestDate_UnmarshalJSON(t *testing.T) {
	var body struct {
		Date Date `json:"date"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"date":"2024-03-15"}`), &body))
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), body.Date.Time)

	require.NoError(t, json.Unmarshal([]byte(`{"date":"2024-03-15T10:30:00Z"}`), &body))
	assert.Equal(t, 10, body.Date.Hour())

	require.NoError(t, json.Unmarshal([]byte(`{"date":null}`), &body))
	assert.True(t, body.Date.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`{"date":"15/03/2024"}`), &body))
}

func TestDate_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(NewDate(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-15T00:00:00Z"`, string(out))

	out, err = json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}
