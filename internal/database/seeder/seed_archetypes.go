package seeder

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"sportmed/internal/database"
	"sportmed/internal/domain/comparison"
	"sportmed/internal/domain/sport"

	"gopkg.in/yaml.v3"
)

//go:embed archetypes.yaml
var archetypesYAML []byte

type ArchetypeSeed struct {
	Sport   string              `yaml:"sport"`
	Name    string              `yaml:"name"`
	Level   string              `yaml:"level"`
	Metrics []comparison.Metric `yaml:"metrics"`
}

// ParseArchetypes decodes and checks archetype reference data. Metric order is kept.
func ParseArchetypes(data []byte) ([]ArchetypeSeed, error) {
	var items []ArchetypeSeed
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse archetypes: %w", err)
	}

	seen := map[string]struct{}{}
	for i, it := range items {
		if _, err := sport.Lookup(it.Sport); err != nil {
			return nil, fmt.Errorf("archetype %d: %w: %q", i, err, it.Sport)
		}
		if strings.TrimSpace(it.Name) == "" {
			return nil, fmt.Errorf("archetype %d: empty name", i)
		}
		if len(it.Metrics) == 0 {
			return nil, fmt.Errorf("archetype %q: no metrics", it.Name)
		}
		names := map[string]struct{}{}
		for _, m := range it.Metrics {
			if _, dup := names[m.Name]; dup || m.Name == "" {
				return nil, fmt.Errorf("archetype %q: invalid metric %q", it.Name, m.Name)
			}
			names[m.Name] = struct{}{}
		}
		key := it.Sport + "/" + it.Name
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("duplicate archetype %s", key)
		}
		seen[key] = struct{}{}
	}
	return items, nil
}

type ArchetypesSeeder struct{}

func (ArchetypesSeeder) Name() string { return "archetypes" }

func (ArchetypesSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "archetypes", "id", "sport", "name", "level", "metrics"); err != nil {
		return err
	}

	items, err := ParseArchetypes(archetypesYAML)
	if err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, it := range items {
		metrics, err := json.Marshal(it.Metrics)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO archetypes (id, sport, name, level, metrics) VALUES (gen_random_uuid(), $1, $2, $3, $4)
ON CONFLICT (sport, name) DO UPDATE SET level = EXCLUDED.level, metrics = EXCLUDED.metrics`,
			it.Sport,
			it.Name,
			it.Level,
			metrics,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
