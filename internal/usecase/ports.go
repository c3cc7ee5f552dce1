package usecase

import (
	"context"
	"time"

	"sportmed/internal/domain/comparison"
	"sportmed/internal/domain/evolution"
	"sportmed/internal/domain/intake"
	"sportmed/internal/domain/user"

	"github.com/google/uuid"
)

const (
	EventIntakeSubmitted   = "intake_submitted"
	EventSportSelected     = "sport_selected"
	EventFeedbackSubmitted = "feedback_submitted"
)

// DataStore is the persistence the intake flow and the analytics read from. Every
// call is scoped to an explicit user id.
type DataStore interface {
	CreateIntake(ctx context.Context, userID uuid.UUID, rec intake.Record) error
	ListIntakeHistory(ctx context.Context, userID uuid.UUID) ([]evolution.Assessment, error)
	GetArchetypes(ctx context.Context, sport string) ([]comparison.Archetype, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (user.Profile, error)
}

type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

type Notifier interface {
	Notify(userID uuid.UUID, eventType string, data any)
}
