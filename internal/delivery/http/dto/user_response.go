package dto

import (
	"time"

	"sportmed/internal/domain/user"
	ucuser "sportmed/internal/usecase/user"
)

type ProfileResponse struct {
	SelectedSport      *string            `json:"selected_sport"`
	NextEvaluationDate *string            `json:"next_evaluation_date"`
	PerformanceMetrics map[string]float64 `json:"performance_metrics"`
	UpdatedAt          *time.Time         `json:"updated_at,omitempty"`
}

type MeResponse struct {
	User    UserResponse    `json:"user"`
	Profile ProfileResponse `json:"profile"`
}

// UpdateProfileRequest patches the assessment fields of the profile. An omitted
// field is left unchanged.
type UpdateProfileRequest struct {
	PerformanceMetrics  map[string]float64 `json:"performance_metrics" validate:"omitempty,max=50"`
	NextEvaluationDate  *string            `json:"next_evaluation_date" validate:"omitempty,datetime=2006-01-02"`
	ClearNextEvaluation bool               `json:"clear_next_evaluation"`
}

func (r UpdateProfileRequest) ToInput() (ucuser.UpdateProfileInput, error) {
	in := ucuser.UpdateProfileInput{PerformanceMetrics: r.PerformanceMetrics, ClearNextEvaluation: r.ClearNextEvaluation}
	if r.NextEvaluationDate != nil {
		t, err := time.ParseInLocation(DateLayout, *r.NextEvaluationDate, time.UTC)
		if err != nil {
			return ucuser.UpdateProfileInput{}, err
		}
		in.NextEvaluationDate = &t
	}
	return in, nil
}

func NewProfileResponse(p user.Profile) ProfileResponse {
	out := ProfileResponse{PerformanceMetrics: p.PerformanceMetrics}
	if out.PerformanceMetrics == nil {
		out.PerformanceMetrics = map[string]float64{}
	}
	if p.SelectedSport != "" {
		s := p.SelectedSport
		out.SelectedSport = &s
	}
	if p.NextEvaluationDate != nil {
		d := p.NextEvaluationDate.UTC().Format(DateLayout)
		out.NextEvaluationDate = &d
	}
	if !p.UpdatedAt.IsZero() {
		u := p.UpdatedAt
		out.UpdatedAt = &u
	}
	return out
}

func NewMeResponse(me ucuser.Me) MeResponse {
	return MeResponse{User: NewUserResponse(me.User), Profile: NewProfileResponse(me.Profile)}
}
