package repository

import (
	"context"

	"sportmed/internal/database"
	"sportmed/internal/domain/comparison"
	"sportmed/internal/domain/evolution"
	"sportmed/internal/domain/intake"
	"sportmed/internal/domain/user"

	"github.com/google/uuid"
)

// Store is the analytics data store backed by the postgres repositories.
type Store struct {
	Intakes    *PostgresIntakeRepository
	Archetypes *PostgresArchetypeRepository
	Profiles   *PostgresProfileRepository
}

func NewStore(db database.DB) *Store {
	return &Store{
		Intakes:    NewPostgresIntakeRepository(db),
		Archetypes: NewPostgresArchetypeRepository(db),
		Profiles:   NewPostgresProfileRepository(db),
	}
}

func (s *Store) CreateIntake(ctx context.Context, userID uuid.UUID, rec intake.Record) error {
	return s.Intakes.Create(ctx, userID, rec)
}

func (s *Store) ListIntakeHistory(ctx context.Context, userID uuid.UUID) ([]evolution.Assessment, error) {
	return s.Intakes.ListByUser(ctx, userID)
}

func (s *Store) GetArchetypes(ctx context.Context, sport string) ([]comparison.Archetype, error) {
	return s.Archetypes.ListBySport(ctx, sport)
}

func (s *Store) GetProfile(ctx context.Context, userID uuid.UUID) (user.Profile, error) {
	return s.Profiles.Get(ctx, userID)
}
