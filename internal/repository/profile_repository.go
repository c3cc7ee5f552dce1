package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"sportmed/internal/database"
	"sportmed/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) Get(ctx context.Context, userID uuid.UUID) (user.Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT user_id, COALESCE(selected_sport, ''), next_evaluation_date, performance_metrics, created_at, updated_at
		 FROM profiles
		 WHERE user_id = $1`,
		userID,
	)

	var (
		p       user.Profile
		next    *time.Time
		metrics []byte
	)
	if err := row.Scan(&p.UserID, &p.SelectedSport, &next, &metrics, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.Profile{}, user.ErrProfileAbsent
		}
		return user.Profile{}, err
	}
	p.NextEvaluationDate = next

	p.PerformanceMetrics = map[string]float64{}
	if len(metrics) > 0 {
		if err := json.Unmarshal(metrics, &p.PerformanceMetrics); err != nil {
			return user.Profile{}, fmt.Errorf("decode performance metrics: %w", err)
		}
	}
	return p, nil
}

func (r *PostgresProfileRepository) SetSport(ctx context.Context, userID uuid.UUID, sport string) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO profiles (user_id, selected_sport, updated_at) VALUES ($1, $2, now())
		 ON CONFLICT (user_id) DO UPDATE SET selected_sport = EXCLUDED.selected_sport, updated_at = now()`,
		userID, sport,
	)
	return err
}

func (r *PostgresProfileRepository) SaveAssessment(ctx context.Context, userID uuid.UUID, metrics map[string]float64, next *time.Time) error {
	if metrics == nil {
		metrics = map[string]float64{}
	}
	b, err := json.Marshal(metrics)
	if err != nil {
		return fmt.Errorf("encode performance metrics: %w", err)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO profiles (user_id, performance_metrics, next_evaluation_date, updated_at) VALUES ($1, $2, $3, now())
		 ON CONFLICT (user_id) DO UPDATE SET
		   performance_metrics = EXCLUDED.performance_metrics,
		   next_evaluation_date = EXCLUDED.next_evaluation_date,
		   updated_at = now()`,
		userID, b, next,
	)
	return err
}
