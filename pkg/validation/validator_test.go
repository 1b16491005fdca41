package validation

import (
	"errors"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"asset-guardian/pkg/types"
)

type riskInput struct {
	Severity int `json:"severity" validate:"required,rpn_factor"`
}

type optionalRisk struct {
	Detection *int `json:"detection,omitempty" validate:"omitempty,rpn_factor"`
}

type recordInput struct {
	Type           string      `json:"type"           validate:"required,maintenance_type"`
	Date           types.Date  `json:"date"           validate:"required"`
	FailureDetails null.String `json:"failureDetails" validate:"omitempty,max=10"`
}

func failedFields(t *testing.T, err error) map[string]string {
	t.Helper()
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	out := make(map[string]string, len(verrs))
	for _, e := range verrs {
		out[e.Field()] = e.Tag()
	}
	return out
}

func TestRPNFactor(t *testing.T) {
	v := New()

	for _, n := range []int{1, 5, 10} {
		assert.NoError(t, v.Validate(&riskInput{Severity: n}), "severity=%d", n)
	}
	for _, n := range []int{-1, 11, 100} {
		err := v.Validate(&riskInput{Severity: n})
		assert.Equal(t, map[string]string{"severity": "rpn_factor"}, failedFields(t, err), "severity=%d", n)
	}

	// ноль не проходит required, до rpn_factor дело не доходит
	assert.Equal(t, map[string]string{"severity": "required"}, failedFields(t, v.Validate(&riskInput{})))

	zero := 0
	assert.NoError(t, v.Validate(&optionalRisk{}))
	assert.Error(t, v.Validate(&optionalRisk{Detection: &zero}))
}

func TestEnumRulesAndNullTypes(t *testing.T) {
	v := New()

	err := v.Validate(&recordInput{Type: "weekly"})
	assert.Equal(t, map[string]string{"type": "maintenance_type", "date": "required"}, failedFields(t, err))

	ok := &recordInput{Type: "corrective", Date: types.NewDate(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))}
	assert.NoError(t, v.Validate(ok))

	ok.FailureDetails = null.StringFrom("muito longo para o limite")
	assert.Equal(t, map[string]string{"failureDetails": "max"}, failedFields(t, v.Validate(ok)))
}

type patchInput struct {
	Priority types.Optional[null.String]  `json:"priority" validate:"omitempty,oneof=low medium high critical"`
	Duration types.Optional[null.Float64] `json:"duration" validate:"omitempty,gte=0"`
}

func TestOptionalFields(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&patchInput{}), "отсутствующие поля не проверяются")
	assert.NoError(t, v.Validate(&patchInput{
		Priority: types.Optional[null.String]{Set: true},
		Duration: types.Optional[null.Float64]{Set: true},
	}), "null очищает поле и проходит omitempty")
	assert.NoError(t, v.Validate(&patchInput{Priority: types.Some(null.StringFrom("high"))}))

	err := v.Validate(&patchInput{
		Priority: types.Some(null.StringFrom("urgent")),
		Duration: types.Some(null.Float64From(-2)),
	})
	assert.Equal(t, map[string]string{"priority": "oneof", "duration": "gte"}, failedFields(t, err))
}
