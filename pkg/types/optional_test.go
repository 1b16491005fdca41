package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type notesPatch struct {
	Notes    Optional[null.String] `json:"notes"`
	Deadline Optional[Date]        `json:"deadline"`
}

func TestOptional_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		name         string
		body         string
		wantSet      bool
		wantValid    bool
		wantDeadline bool
	}{
		{"key absent", `{}`, false, false, false},
		{"explicit null", `{"notes":null,"deadline":null}`, true, false, false},
		{"value", `{"notes":"Trocar filtro","deadline":"2024-06-10"}`, true, true, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var p notesPatch
			require.NoError(t, json.Unmarshal([]byte(tc.body), &p))
			assert.Equal(t, tc.wantSet, p.Notes.Set)
			assert.Equal(t, tc.wantValid, p.Notes.Value.Valid)
			assert.Equal(t, tc.wantSet, p.Deadline.Set)
			assert.Equal(t, tc.wantDeadline, !p.Deadline.Value.IsZero())
		})
	}
}

func TestOptional_Apply(t *testing.T) {
	current := null.StringFrom("Verificar ruído")

	Optional[null.String]{}.Apply(&current)
	assert.Equal(t, null.StringFrom("Verificar ruído"), current, "отсутствующее поле не меняет значение")

	Optional[null.String]{Set: true}.Apply(&current)
	assert.False(t, current.Valid, "null очищает значение")

	Some(null.StringFrom("Lubrificado")).Apply(&current)
	assert.Equal(t, "Lubrificado", current.String)

	var deadline Optional[Date]
	require.NoError(t, json.Unmarshal([]byte(`"2024-06-10"`), &deadline))
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), deadline.Value.Time)
}
