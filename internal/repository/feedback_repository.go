package repository

import (
	"context"

	"sportmed/internal/database"
	"sportmed/internal/domain/feedback"

	"github.com/google/uuid"
)

type PostgresFeedbackRepository struct {
	db database.DB
}

func NewPostgresFeedbackRepository(db database.DB) *PostgresFeedbackRepository {
	return &PostgresFeedbackRepository{db: db}
}

func (r *PostgresFeedbackRepository) Create(ctx context.Context, f feedback.Feedback) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO daily_feedback (id, user_id, workout_date, perceived_exertion, fatigue_level, notes)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		f.ID, f.UserID, f.WorkoutDate, f.PerceivedExertion, f.FatigueLevel, f.Notes,
	)
	return err
}

func (r *PostgresFeedbackRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]feedback.Feedback, error) {
	if limit <= 0 {
		limit = 30
	}
	if limit > 365 {
		limit = 365
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, workout_date, perceived_exertion, fatigue_level, notes, created_at
		 FROM daily_feedback
		 WHERE user_id = $1
		 ORDER BY workout_date DESC, created_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]feedback.Feedback, 0)
	for rows.Next() {
		var f feedback.Feedback
		if err := rows.Scan(&f.ID, &f.UserID, &f.WorkoutDate, &f.PerceivedExertion, &f.FatigueLevel, &f.Notes, &f.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
