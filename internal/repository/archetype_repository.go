package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"sportmed/internal/database"
	"sportmed/internal/domain/comparison"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrArchetypeNotFound = errors.New("archetype not found")

type PostgresArchetypeRepository struct {
	db database.DB
}

func NewPostgresArchetypeRepository(db database.DB) *PostgresArchetypeRepository {
	return &PostgresArchetypeRepository{db: db}
}

// ListBySport returns archetypes for the sport. An empty sport lists all of them.
func (r *PostgresArchetypeRepository) ListBySport(ctx context.Context, sport string) ([]comparison.Archetype, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, level, sport, metrics
		 FROM archetypes
		 WHERE $1 = '' OR lower(sport) = $1
		 ORDER BY sport ASC, created_at ASC, name ASC`,
		strings.ToLower(strings.TrimSpace(sport)),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]comparison.Archetype, 0)
	for rows.Next() {
		a, err := scanArchetype(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresArchetypeRepository) GetByID(ctx context.Context, id uuid.UUID) (comparison.Archetype, error) {
	a, err := scanArchetype(r.db.QueryRow(ctx,
		`SELECT id, name, level, sport, metrics FROM archetypes WHERE id = $1`,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return comparison.Archetype{}, ErrArchetypeNotFound
		}
		return comparison.Archetype{}, err
	}
	return a, nil
}

func scanArchetype(row database.Row) (comparison.Archetype, error) {
	var (
		a       comparison.Archetype
		metrics []byte
	)
	if err := row.Scan(&a.ID, &a.Name, &a.Level, &a.Sport, &metrics); err != nil {
		return comparison.Archetype{}, err
	}
	a.Metrics = []comparison.Metric{}
	if len(metrics) > 0 {
		if err := json.Unmarshal(metrics, &a.Metrics); err != nil {
			return comparison.Archetype{}, fmt.Errorf("decode archetype %s metrics: %w", a.ID, err)
		}
	}
	return a, nil
}
