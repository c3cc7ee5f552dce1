package intake

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

type Intensity string

const (
	IntensityLow      Intensity = "low"
	IntensityModerate Intensity = "moderate"
	IntensityHigh     Intensity = "high"
)

type Lifestyle struct {
	Smoking bool   `json:"smoking"`
	Alcohol bool   `json:"alcohol"`
	Sleep   string `json:"sleep"`
	Stress  string `json:"stress"`
}

// Record is one questionnaire's answers. Numeric answers are kept as the text the
// user typed; use ParseNumber when a value is needed for computation.
type Record struct {
	Age            string `json:"age"`
	WeightKg       string `json:"weight_kg"`
	HeightCm       string `json:"height_cm"`
	BodyFatPercent string `json:"body_fat_percent,omitempty"`

	MedicalHistory     []string `json:"medical_history"`
	CurrentMedications []string `json:"current_medications"`
	Allergies          []string `json:"allergies"`
	PreviousInjuries   []string `json:"previous_injuries"`

	ExerciseFrequency string    `json:"exercise_frequency"`
	ExerciseIntensity Intensity `json:"exercise_intensity"`
	FitnessGoals      []string  `json:"fitness_goals"`

	Lifestyle Lifestyle `json:"lifestyle"`
}

func DefaultRecord() Record {
	return Record{
		MedicalHistory:     []string{},
		CurrentMedications: []string{},
		Allergies:          []string{},
		PreviousInjuries:   []string{},
		ExerciseIntensity:  IntensityModerate,
		FitnessGoals:       []string{},
		Lifestyle: Lifestyle{
			Sleep:  "7-8",
			Stress: "moderate",
		},
	}
}

func (r Record) Clone() Record {
	out := r
	out.MedicalHistory = cloneSet(r.MedicalHistory)
	out.CurrentMedications = cloneSet(r.CurrentMedications)
	out.Allergies = cloneSet(r.Allergies)
	out.PreviousInjuries = cloneSet(r.PreviousInjuries)
	out.FitnessGoals = cloneSet(r.FitnessGoals)
	return out
}

func cloneSet(s []string) []string {
	if s == nil {
		return []string{}
	}
	return slices.Clone(s)
}

// NormalizeSet drops blanks and duplicates, keeping first occurrence order.
func NormalizeSet(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// ParseNumber converts a stored numeric answer. Anything that is not a finite
// number yields NaN so that comparisons against it are false.
func ParseNumber(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsInf(v, 0) {
		return math.NaN()
	}
	return v
}

// ParseNumberOr is ParseNumber with a fallback for unparsable input.
func ParseNumberOr(s string, fallback float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}
