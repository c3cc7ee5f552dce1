package evolution

import (
	"math"
	"time"

	"sportmed/internal/domain/intake"
)

const (
	MinAssessments = 2
	DateLayout     = "2006-01-02"
)

type Assessment struct {
	CreatedAt time.Time
	Record    intake.Record
}

// Series holds per-assessment metrics aligned by index.
type Series struct {
	Labels  []string
	Weight  []float64
	BMI     []float64
	BodyFat []float64
}

// Build derives weight, BMI and body fat series from a history sorted by creation
// time. It reports false when there are fewer than MinAssessments entries.
func Build(history []Assessment) (Series, bool) {
	if len(history) < MinAssessments {
		return Series{}, false
	}

	n := len(history)
	s := Series{
		Labels:  make([]string, 0, n),
		Weight:  make([]float64, 0, n),
		BMI:     make([]float64, 0, n),
		BodyFat: make([]float64, 0, n),
	}
	for _, a := range history {
		weight := intake.ParseNumberOr(a.Record.WeightKg, 0)
		heightM := intake.ParseNumberOr(a.Record.HeightCm, 0) / 100

		s.Labels = append(s.Labels, a.CreatedAt.UTC().Format(DateLayout))
		s.Weight = append(s.Weight, weight)
		s.BMI = append(s.BMI, finiteOrZero(weight/(heightM*heightM)))
		s.BodyFat = append(s.BodyFat, intake.ParseNumberOr(a.Record.BodyFatPercent, 0))
	}
	return s, true
}

// ReevaluationDue reports whether the scheduled evaluation date has been reached.
func ReevaluationDue(next *time.Time, now time.Time) bool {
	if next == nil || next.IsZero() {
		return false
	}
	return !next.After(now)
}

func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
