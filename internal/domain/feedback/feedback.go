package feedback

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var ErrInvalid = errors.New("invalid feedback")

// Feedback is one post-workout self report.
type Feedback struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	WorkoutDate       time.Time `validate:"required"`
	PerceivedExertion int       `validate:"min=1,max=10"`
	FatigueLevel      int       `validate:"min=1,max=10"`
	Notes             string    `validate:"max=2000"`
	CreatedAt         time.Time
}

type Repository interface {
	Create(ctx context.Context, f Feedback) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]Feedback, error)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate returns ErrInvalid wrapped with the first failing field.
func Validate(f Feedback) error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, describe(verrs[0]))
	}
	return fmt.Errorf("%w: %v", ErrInvalid, err)
}

func describe(fe validator.FieldError) string {
	switch fe.Field() {
	case "WorkoutDate":
		return "workout date is required"
	case "PerceivedExertion":
		return "perceived exertion must be between 1 and 10"
	case "FatigueLevel":
		return "fatigue level must be between 1 and 10"
	case "Notes":
		return "notes must be at most 2000 characters"
	default:
		return strings.ToLower(fe.Field()) + " is invalid"
	}
}
