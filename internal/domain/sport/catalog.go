package sport

import (
	"errors"
	"strings"
)

var ErrUnknownSport = errors.New("unknown sport")

const (
	Football     = "football"
	MMA          = "mma"
	Bodybuilding = "bodybuilding"
)

type Sport struct {
	ID          string
	Name        string
	Description string
	Benefits    []string
}

var catalog = []Sport{
	{
		ID:          Football,
		Name:        "Football",
		Description: "Focus on cardio, agility, and team coordination.",
		Benefits:    []string{"Cardiovascular health", "Lower body strength", "Motor coordination"},
	},
	{
		ID:          MMA,
		Name:        "MMA",
		Description: "Complete body conditioning and combat skills.",
		Benefits:    []string{"Full body strength", "Mental resilience", "Combat techniques"},
	},
	{
		ID:          Bodybuilding,
		Name:        "Bodybuilding",
		Description: "Muscle development and aesthetic physique.",
		Benefits:    []string{"Muscle hypertrophy", "Body composition", "Strength gains"},
	},
}

// All returns a copy of the catalog in display order.
func All() []Sport {
	out := make([]Sport, 0, len(catalog))
	for _, s := range catalog {
		s.Benefits = append([]string(nil), s.Benefits...)
		out = append(out, s)
	}
	return out
}

// Lookup resolves an id case-insensitively.
func Lookup(id string) (Sport, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, s := range catalog {
		if s.ID == id {
			s.Benefits = append([]string(nil), s.Benefits...)
			return s, nil
		}
	}
	return Sport{}, ErrUnknownSport
}
