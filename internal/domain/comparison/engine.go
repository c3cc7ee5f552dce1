package comparison

import (
	"strings"

	"github.com/google/uuid"
)

type Metric struct {
	Name  string  `json:"name" yaml:"name"`
	Value float64 `json:"value" yaml:"value"`
}

// Archetype is reference data for one sport. Metric order is the display order.
type Archetype struct {
	ID      uuid.UUID
	Name    string
	Level   string
	Sport   string
	Metrics []Metric
}

type Series struct {
	Labels          []string
	UserLabel       string
	UserValues      []float64
	ArchetypeLabel  string
	ArchetypeValues []float64
}

type Result struct {
	Strengths []string
	Gaps      []string
	Series    Series
}

const UserSeriesLabel = "Your Level"

// Compare scores the user against every metric the archetype defines. A metric the
// user has no value for counts as 0; a tie is a strength.
func Compare(userMetrics map[string]float64, a Archetype) Result {
	n := len(a.Metrics)
	res := Result{
		Strengths: make([]string, 0, n),
		Gaps:      make([]string, 0, n),
		Series: Series{
			Labels:          make([]string, 0, n),
			UserLabel:       UserSeriesLabel,
			UserValues:      make([]float64, 0, n),
			ArchetypeLabel:  a.Name,
			ArchetypeValues: make([]float64, 0, n),
		},
	}

	for _, m := range a.Metrics {
		userValue := userMetrics[m.Name]

		res.Series.Labels = append(res.Series.Labels, m.Name)
		res.Series.UserValues = append(res.Series.UserValues, userValue)
		res.Series.ArchetypeValues = append(res.Series.ArchetypeValues, m.Value)

		if userValue >= m.Value {
			res.Strengths = append(res.Strengths, m.Name)
		} else {
			res.Gaps = append(res.Gaps, m.Name)
		}
	}

	return res
}

// FilterBySport keeps archetypes of the given sport, preserving order.
func FilterBySport(in []Archetype, sport string) []Archetype {
	sport = strings.ToLower(strings.TrimSpace(sport))
	out := make([]Archetype, 0, len(in))
	for _, a := range in {
		if strings.ToLower(a.Sport) == sport {
			out = append(out, a)
		}
	}
	return out
}

func FindByID(in []Archetype, id uuid.UUID) (Archetype, bool) {
	for _, a := range in {
		if a.ID == id {
			return a, true
		}
	}
	return Archetype{}, false
}
