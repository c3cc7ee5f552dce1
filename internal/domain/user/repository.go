package user

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("user not found")
	ErrEmailTaken    = errors.New("email already registered")
	ErrProfileAbsent = errors.New("profile not found")
)

type Repository interface {
	Create(ctx context.Context, u User) error
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
}

type ProfileRepository interface {
	Get(ctx context.Context, userID uuid.UUID) (Profile, error)
	SetSport(ctx context.Context, userID uuid.UUID, sport string) error
	// SaveAssessment replaces the performance metrics and the next evaluation date.
	SaveAssessment(ctx context.Context, userID uuid.UUID, metrics map[string]float64, next *time.Time) error
}
