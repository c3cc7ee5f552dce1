package intake

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeRecord() Record {
	r := DefaultRecord()
	r.Age = "30"
	r.WeightKg = "75"
	r.HeightCm = "180"
	r.ExerciseFrequency = "3x/week"
	r.FitnessGoals = []string{"endurance"}
	return r
}

func TestSchema_ValidateFull_Complete(t *testing.T) {
	assert.NoError(t, DefaultSchema().ValidateFull(completeRecord()))
}

func TestSchema_ValidateFull_ReportsFirstViolationOnly(t *testing.T) {
	r := completeRecord()
	r.WeightKg = ""
	r.FitnessGoals = nil

	err := DefaultSchema().ValidateFull(r)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, FieldWeightKg, ve.Field)
	assert.Equal(t, "Weight is required", ve.Message)
}

func TestSchema_ValidateSubset_IgnoresOtherFields(t *testing.T) {
	r := DefaultRecord()
	r.Age = "30"
	r.WeightKg = "75"
	r.HeightCm = "180"

	assert.NoError(t, DefaultSchema().ValidateSubset(r, StepFields(Step1)...))
	assert.Error(t, DefaultSchema().ValidateSubset(r, StepFields(Step3)...))
}

func TestSchema_ValidateSubset_DeclarationOrderWins(t *testing.T) {
	r := DefaultRecord()

	err := DefaultSchema().ValidateSubset(r, FieldHeightCm, FieldAge)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Age is required", ve.Message)
}

func TestSchema_ValidateSubset_GroupSelectsMembers(t *testing.T) {
	r := completeRecord()
	r.Lifestyle.Stress = "extreme"

	err := DefaultSchema().ValidateSubset(r, FieldLifestyle)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, FieldStress, ve.Field)
}

func TestSchema_ValidateSubset_UnknownField(t *testing.T) {
	err := DefaultSchema().ValidateSubset(completeRecord(), "shoe_size")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestSchema_ValidateField(t *testing.T) {
	s := DefaultSchema()

	cases := []struct {
		name    string
		field   string
		value   any
		wantMsg string
	}{
		{name: "age ok", field: FieldAge, value: "41"},
		{name: "age empty", field: FieldAge, value: "", wantMsg: "Age is required"},
		{name: "goals empty", field: FieldFitnessGoals, value: []string{}, wantMsg: "At least one fitness goal is required"},
		{name: "goals nil", field: FieldFitnessGoals, value: []string(nil), wantMsg: "At least one fitness goal is required"},
		{name: "goals ok", field: FieldFitnessGoals, value: []string{"strength"}},
		{name: "intensity ok", field: FieldExerciseIntensity, value: IntensityHigh},
		{name: "intensity bad", field: FieldExerciseIntensity, value: "extreme", wantMsg: "Exercise intensity must be one of: low, moderate, high"},
		{name: "sleep lower bucket", field: FieldSleep, value: "<6"},
		{name: "sleep upper bucket", field: FieldSleep, value: "8+"},
		{name: "sleep bad", field: FieldSleep, value: "9", wantMsg: "Sleep must be one of: <6, 6-7, 7-8, 8+"},
		{name: "bool always valid", field: FieldSmoking, value: true},
		{name: "history may be empty", field: FieldAllergies, value: []string{}},
		{name: "body fat optional", field: FieldBodyFatPercent, value: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := s.ValidateField(tc.field, tc.value)
			if tc.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.wantMsg, ve.Message)
		})
	}
}

func TestSchema_ValidateField_TypeMismatch(t *testing.T) {
	err := DefaultSchema().ValidateField(FieldSmoking, "yes")
	assert.True(t, errors.Is(err, ErrInvalidValue))

	err = DefaultSchema().ValidateField("nope", "x")
	assert.True(t, errors.Is(err, ErrUnknownField))
}

func TestParseNumber(t *testing.T) {
	assert.Equal(t, 45.0, ParseNumber(" 45 "))
	assert.True(t, math.IsNaN(ParseNumber("abc")))
	assert.Equal(t, 0.0, ParseNumberOr("", 0))
	assert.Equal(t, 0.0, ParseNumberOr("NaN", 0))
	assert.Equal(t, 12.5, ParseNumberOr("12.5", 0))

	for _, in := range []string{"inf", "+Inf", "-Infinity", "1e400"} {
		assert.True(t, math.IsNaN(ParseNumber(in)), in)
		assert.Equal(t, 0.0, ParseNumberOr(in, 0), in)
	}
}

func TestNormalizeSet(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, NormalizeSet([]string{" a", "b", "a", ""}))
}
