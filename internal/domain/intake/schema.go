package intake

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrUnknownField = errors.New("unknown intake field")
	ErrInvalidValue = errors.New("invalid value for intake field")
)

// ValidationError reports the first rule a record violated.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

const (
	FieldAge                = "age"
	FieldWeightKg           = "weight_kg"
	FieldHeightCm           = "height_cm"
	FieldBodyFatPercent     = "body_fat_percent"
	FieldMedicalHistory     = "medical_history"
	FieldCurrentMedications = "current_medications"
	FieldAllergies          = "allergies"
	FieldPreviousInjuries   = "previous_injuries"
	FieldExerciseFrequency  = "exercise_frequency"
	FieldExerciseIntensity  = "exercise_intensity"
	FieldFitnessGoals       = "fitness_goals"
	FieldLifestyle          = "lifestyle"
	FieldSmoking            = "lifestyle.smoking"
	FieldAlcohol            = "lifestyle.alcohol"
	FieldSleep              = "lifestyle.sleep"
	FieldStress             = "lifestyle.stress"
)

type fieldKind int

const (
	kindText fieldKind = iota
	kindEnum
	kindSet
	kindBool
)

type fieldRule struct {
	name    string
	kind    fieldKind
	tag     string
	message string
	get     func(Record) any
	set     func(*Record, any)
}

// Schema holds the intake field rules in declaration order. Validation stops at the
// first failing rule.
type Schema struct {
	validate *validator.Validate
	rules    []fieldRule
	byName   map[string]int
}

var defaultSchema = NewSchema()

func DefaultSchema() *Schema {
	return defaultSchema
}

func NewSchema() *Schema {
	s := &Schema{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		rules:    intakeRules(),
	}
	s.byName = make(map[string]int, len(s.rules))
	for i, r := range s.rules {
		s.byName[r.name] = i
	}
	return s
}

func intakeRules() []fieldRule {
	return []fieldRule{
		textRule(FieldAge, "min=1", "Age is required",
			func(r Record) string { return r.Age },
			func(r *Record, v string) { r.Age = v }),
		textRule(FieldWeightKg, "min=1", "Weight is required",
			func(r Record) string { return r.WeightKg },
			func(r *Record, v string) { r.WeightKg = v }),
		textRule(FieldHeightCm, "min=1", "Height is required",
			func(r Record) string { return r.HeightCm },
			func(r *Record, v string) { r.HeightCm = v }),
		textRule(FieldBodyFatPercent, "", "",
			func(r Record) string { return r.BodyFatPercent },
			func(r *Record, v string) { r.BodyFatPercent = v }),

		setRule(FieldMedicalHistory, "", "",
			func(r *Record) *[]string { return &r.MedicalHistory }),
		setRule(FieldCurrentMedications, "", "",
			func(r *Record) *[]string { return &r.CurrentMedications }),
		setRule(FieldAllergies, "", "",
			func(r *Record) *[]string { return &r.Allergies }),
		setRule(FieldPreviousInjuries, "", "",
			func(r *Record) *[]string { return &r.PreviousInjuries }),

		textRule(FieldExerciseFrequency, "min=1", "Exercise frequency is required",
			func(r Record) string { return r.ExerciseFrequency },
			func(r *Record, v string) { r.ExerciseFrequency = v }),
		{
			name:    FieldExerciseIntensity,
			kind:    kindEnum,
			tag:     "oneof=low moderate high",
			message: "Exercise intensity must be one of: low, moderate, high",
			get:     func(r Record) any { return string(r.ExerciseIntensity) },
			set:     func(r *Record, v any) { r.ExerciseIntensity = Intensity(v.(string)) },
		},
		setRule(FieldFitnessGoals, "min=1", "At least one fitness goal is required",
			func(r *Record) *[]string { return &r.FitnessGoals }),

		{
			name: FieldSmoking,
			kind: kindBool,
			get:  func(r Record) any { return r.Lifestyle.Smoking },
			set:  func(r *Record, v any) { r.Lifestyle.Smoking = v.(bool) },
		},
		{
			name: FieldAlcohol,
			kind: kindBool,
			get:  func(r Record) any { return r.Lifestyle.Alcohol },
			set:  func(r *Record, v any) { r.Lifestyle.Alcohol = v.(bool) },
		},
		{
			name:    FieldSleep,
			kind:    kindEnum,
			tag:     "oneof=<6 6-7 7-8 8+",
			message: "Sleep must be one of: <6, 6-7, 7-8, 8+",
			get:     func(r Record) any { return r.Lifestyle.Sleep },
			set:     func(r *Record, v any) { r.Lifestyle.Sleep = v.(string) },
		},
		{
			name:    FieldStress,
			kind:    kindEnum,
			tag:     "oneof=low moderate high",
			message: "Stress must be one of: low, moderate, high",
			get:     func(r Record) any { return r.Lifestyle.Stress },
			set:     func(r *Record, v any) { r.Lifestyle.Stress = v.(string) },
		},
	}
}

func textRule(name, tag, msg string, get func(Record) string, set func(*Record, string)) fieldRule {
	return fieldRule{
		name:    name,
		kind:    kindText,
		tag:     tag,
		message: msg,
		get:     func(r Record) any { return get(r) },
		set:     func(r *Record, v any) { set(r, v.(string)) },
	}
}

func setRule(name, tag, msg string, ref func(*Record) *[]string) fieldRule {
	return fieldRule{
		name:    name,
		kind:    kindSet,
		tag:     tag,
		message: msg,
		get:     func(r Record) any { return *ref(&r) },
		set:     func(r *Record, v any) { *ref(r) = NormalizeSet(v.([]string)) },
	}
}

// ValidateField checks a single value against the rule for name.
func (s *Schema) ValidateField(name string, value any) error {
	rule, ok := s.rule(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	value, ok = coerce(rule.kind, value)
	if !ok {
		return fmt.Errorf("%w: %s", ErrInvalidValue, name)
	}
	return s.check(rule, value)
}

// ValidateSubset validates only the named fields. A group name such as "lifestyle"
// selects every field under it. Fields outside the subset are ignored.
func (s *Schema) ValidateSubset(rec Record, names ...string) error {
	selected := make([]bool, len(s.rules))
	for _, n := range names {
		n = strings.TrimSpace(n)
		matched := false
		for i, r := range s.rules {
			if r.name == n || strings.HasPrefix(r.name, n+".") {
				selected[i] = true
				matched = true
			}
		}
		if !matched {
			return fmt.Errorf("%w: %s", ErrUnknownField, n)
		}
	}

	for i, r := range s.rules {
		if !selected[i] {
			continue
		}
		if err := s.check(r, r.get(rec)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Schema) ValidateFull(rec Record) error {
	for _, r := range s.rules {
		if err := s.check(r, r.get(rec)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Schema) check(r fieldRule, value any) error {
	if r.tag == "" {
		return nil
	}
	if err := s.validate.Var(value, r.tag); err != nil {
		return &ValidationError{Field: r.name, Message: r.message}
	}
	return nil
}

func (s *Schema) rule(name string) (fieldRule, bool) {
	i, ok := s.byName[name]
	if !ok {
		return fieldRule{}, false
	}
	return s.rules[i], true
}

// set assigns value to the named field after a type check.
func (s *Schema) set(rec *Record, name string, value any) error {
	rule, ok := s.rule(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	value, ok = coerce(rule.kind, value)
	if !ok {
		return fmt.Errorf("%w: %s", ErrInvalidValue, name)
	}
	rule.set(rec, value)
	return nil
}

func (s *Schema) isSet(name string) bool {
	rule, ok := s.rule(name)
	return ok && rule.kind == kindSet
}

func coerce(kind fieldKind, value any) (any, bool) {
	switch kind {
	case kindText, kindEnum:
		switch v := value.(type) {
		case string:
			return v, true
		case Intensity:
			return string(v), true
		}
	case kindSet:
		if v, ok := value.([]string); ok {
			return v, true
		}
	case kindBool:
		if v, ok := value.(bool); ok {
			return v, true
		}
	}
	return nil, false
}
