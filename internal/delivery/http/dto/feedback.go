package dto

import (
	"time"

	"sportmed/internal/domain/feedback"

	"github.com/google/uuid"
)

const DateLayout = time.DateOnly

type FeedbackRequest struct {
	WorkoutDate       string `json:"workout_date" validate:"omitempty,datetime=2006-01-02"`
	PerceivedExertion int    `json:"perceived_exertion" validate:"required,min=1,max=10"`
	FatigueLevel      int    `json:"fatigue_level" validate:"required,min=1,max=10"`
	Notes             string `json:"notes" validate:"max=2000"`
}

// Date parses WorkoutDate; an empty value yields nil.
func (r FeedbackRequest) Date() (*time.Time, error) {
	if r.WorkoutDate == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(DateLayout, r.WorkoutDate, time.UTC)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

type FeedbackResponse struct {
	ID                uuid.UUID `json:"id"`
	WorkoutDate       string    `json:"workout_date"`
	PerceivedExertion int       `json:"perceived_exertion"`
	FatigueLevel      int       `json:"fatigue_level"`
	Notes             string    `json:"notes"`
	CreatedAt         time.Time `json:"created_at"`
}

func NewFeedbackResponse(f feedback.Feedback) FeedbackResponse {
	return FeedbackResponse{
		ID:                f.ID,
		WorkoutDate:       f.WorkoutDate.Format(DateLayout),
		PerceivedExertion: f.PerceivedExertion,
		FatigueLevel:      f.FatigueLevel,
		Notes:             f.Notes,
		CreatedAt:         f.CreatedAt,
	}
}

func NewFeedbackResponses(items []feedback.Feedback) []FeedbackResponse {
	out := make([]FeedbackResponse, 0, len(items))
	for _, f := range items {
		out = append(out, NewFeedbackResponse(f))
	}
	return out
}
