package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile carries the per-user state the analytics read: the chosen sport, the next
// scheduled evaluation and self-reported performance metrics.
type Profile struct {
	UserID             uuid.UUID
	SelectedSport      string
	NextEvaluationDate *time.Time
	PerformanceMetrics map[string]float64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
