package dto

import (
	"sportmed/internal/domain/comparison"
	"sportmed/internal/domain/evolution"
	"sportmed/internal/domain/recommendation"
	"sportmed/internal/usecase"

	"github.com/google/uuid"
)

type SpecialistResponse struct {
	Type      string `json:"type"`
	Reason    string `json:"reason"`
	Icon      string `json:"icon"`
	SearchURL string `json:"search_url"`
}

func NewSpecialistResponses(items []recommendation.Specialist) []SpecialistResponse {
	out := make([]SpecialistResponse, 0, len(items))
	for _, s := range items {
		out = append(out, SpecialistResponse{Type: s.Type, Reason: s.Reason, Icon: s.Icon, SearchURL: s.SearchURL()})
	}
	return out
}

type ArchetypeResponse struct {
	ID      uuid.UUID           `json:"id"`
	Name    string              `json:"name"`
	Level   string              `json:"level"`
	Sport   string              `json:"sport"`
	Metrics []comparison.Metric `json:"metrics"`
}

func NewArchetypeResponse(a comparison.Archetype) ArchetypeResponse {
	metrics := a.Metrics
	if metrics == nil {
		metrics = []comparison.Metric{}
	}
	return ArchetypeResponse{ID: a.ID, Name: a.Name, Level: a.Level, Sport: a.Sport, Metrics: metrics}
}

func NewArchetypeResponses(items []comparison.Archetype) []ArchetypeResponse {
	out := make([]ArchetypeResponse, 0, len(items))
	for _, a := range items {
		out = append(out, NewArchetypeResponse(a))
	}
	return out
}

type DatasetResponse struct {
	Label  string    `json:"label"`
	Values []float64 `json:"values"`
}

type ComparisonResponse struct {
	Archetype ArchetypeResponse `json:"archetype"`
	Strengths []string          `json:"strengths"`
	Gaps      []string          `json:"gaps"`
	Labels    []string          `json:"labels"`
	Datasets  []DatasetResponse `json:"datasets"`
}

func NewComparisonResponse(v usecase.ComparisonView) ComparisonResponse {
	s := v.Result.Series
	return ComparisonResponse{
		Archetype: NewArchetypeResponse(v.Archetype),
		Strengths: v.Result.Strengths,
		Gaps:      v.Result.Gaps,
		Labels:    s.Labels,
		Datasets: []DatasetResponse{
			{Label: s.UserLabel, Values: s.UserValues},
			{Label: s.ArchetypeLabel, Values: s.ArchetypeValues},
		},
	}
}

type EvolutionSeriesResponse struct {
	Labels  []string  `json:"labels"`
	Weight  []float64 `json:"weight"`
	BMI     []float64 `json:"bmi"`
	BodyFat []float64 `json:"body_fat"`
}

type EvolutionResponse struct {
	Series          *EvolutionSeriesResponse `json:"series"`
	ReevaluationDue bool                     `json:"reevaluation_due"`
}

func NewEvolutionResponse(v usecase.EvolutionView) EvolutionResponse {
	out := EvolutionResponse{ReevaluationDue: v.ReevaluationDue}
	if v.Series != nil {
		out.Series = newEvolutionSeries(*v.Series)
	}
	return out
}

func newEvolutionSeries(s evolution.Series) *EvolutionSeriesResponse {
	return &EvolutionSeriesResponse{Labels: s.Labels, Weight: s.Weight, BMI: s.BMI, BodyFat: s.BodyFat}
}
