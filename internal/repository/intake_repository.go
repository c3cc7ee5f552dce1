package repository

import (
	"context"
	"time"

	"sportmed/internal/database"
	"sportmed/internal/domain/evolution"
	"sportmed/internal/domain/intake"

	"github.com/google/uuid"
)

const intakeColumns = `age, weight_kg, height_cm, body_fat_percent,
		 medical_history, current_medications, allergies, previous_injuries,
		 exercise_frequency, exercise_intensity, fitness_goals,
		 smoking, alcohol, sleep, stress`

type PostgresIntakeRepository struct {
	db database.DB
}

func NewPostgresIntakeRepository(db database.DB) *PostgresIntakeRepository {
	return &PostgresIntakeRepository{db: db}
}

func (r *PostgresIntakeRepository) Create(ctx context.Context, userID uuid.UUID, rec intake.Record) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO intake_records (id, user_id, `+intakeColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		uuid.New(), userID,
		rec.Age, rec.WeightKg, rec.HeightCm, rec.BodyFatPercent,
		nonNil(rec.MedicalHistory), nonNil(rec.CurrentMedications), nonNil(rec.Allergies), nonNil(rec.PreviousInjuries),
		rec.ExerciseFrequency, string(rec.ExerciseIntensity), nonNil(rec.FitnessGoals),
		rec.Lifestyle.Smoking, rec.Lifestyle.Alcohol, rec.Lifestyle.Sleep, rec.Lifestyle.Stress,
	)
	return err
}

// ListByUser returns the user's assessments oldest first.
func (r *PostgresIntakeRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]evolution.Assessment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT created_at, `+intakeColumns+`
		 FROM intake_records
		 WHERE user_id = $1
		 ORDER BY created_at ASC, id ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]evolution.Assessment, 0)
	for rows.Next() {
		var a evolution.Assessment
		if err := scanIntake(rows, &a.CreatedAt, &a.Record); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanIntake(row database.Row, createdAt *time.Time, rec *intake.Record) error {
	var intensity string
	err := row.Scan(
		createdAt,
		&rec.Age, &rec.WeightKg, &rec.HeightCm, &rec.BodyFatPercent,
		&rec.MedicalHistory, &rec.CurrentMedications, &rec.Allergies, &rec.PreviousInjuries,
		&rec.ExerciseFrequency, &intensity, &rec.FitnessGoals,
		&rec.Lifestyle.Smoking, &rec.Lifestyle.Alcohol, &rec.Lifestyle.Sleep, &rec.Lifestyle.Stress,
	)
	if err != nil {
		return err
	}
	rec.ExerciseIntensity = intake.Intensity(intensity)
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
