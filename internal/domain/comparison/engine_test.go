package comparison

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCompare_MissingUserMetricIsZero(t *testing.T) {
	a := Archetype{Name: "Pro Striker", Metrics: []Metric{{Name: "speed", Value: 10}, {Name: "power", Value: 3}}}

	got := Compare(map[string]float64{"speed": 5}, a)

	want := Result{
		Strengths: []string{},
		Gaps:      []string{"speed", "power"},
		Series: Series{
			Labels:          []string{"speed", "power"},
			UserLabel:       UserSeriesLabel,
			UserValues:      []float64{5, 0},
			ArchetypeLabel:  "Pro Striker",
			ArchetypeValues: []float64{10, 3},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Compare() mismatch (-want +got):\n%s", diff)
	}
}

func TestCompare_TieIsStrength(t *testing.T) {
	a := Archetype{Metrics: []Metric{{Name: "endurance", Value: 7}, {Name: "agility", Value: 9}}}

	got := Compare(map[string]float64{"endurance": 7, "agility": 10, "ignored": 100}, a)

	assert.Equal(t, []string{"endurance", "agility"}, got.Strengths)
	assert.Empty(t, got.Gaps)
	assert.Equal(t, []string{"endurance", "agility"}, got.Series.Labels)
}

func TestCompare_NoUserMetrics(t *testing.T) {
	a := Archetype{Metrics: []Metric{{Name: "speed", Value: 4}, {Name: "zeroed", Value: 0}, {Name: "negative", Value: -1}}}

	got := Compare(nil, a)

	assert.Equal(t, []string{"zeroed", "negative"}, got.Strengths)
	assert.Equal(t, []string{"speed"}, got.Gaps)
}

func TestCompare_LabelOrderFollowsArchetype(t *testing.T) {
	a := Archetype{Metrics: []Metric{{Name: "z", Value: 1}, {Name: "a", Value: 1}, {Name: "m", Value: 1}}}

	got := Compare(map[string]float64{"a": 2}, a)

	assert.Equal(t, []string{"z", "a", "m"}, got.Series.Labels)
	assert.Equal(t, []float64{0, 2, 0}, got.Series.UserValues)
	assert.Equal(t, []string{"z", "m"}, got.Gaps)
}

func TestFilterBySport(t *testing.T) {
	id := uuid.New()
	in := []Archetype{
		{ID: id, Sport: "football"},
		{ID: uuid.New(), Sport: "mma"},
		{ID: uuid.New(), Sport: "Football"},
	}

	got := FilterBySport(in, "football")
	assert.Len(t, got, 2)

	found, ok := FindByID(got, id)
	assert.True(t, ok)
	assert.Equal(t, id, found.ID)

	_, ok = FindByID(got, uuid.New())
	assert.False(t, ok)
}
