package usecase

import (
	"context"
	"errors"
	"time"

	"sportmed/internal/domain/comparison"
	"sportmed/internal/domain/evolution"
	"sportmed/internal/domain/recommendation"
	"sportmed/internal/domain/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	kindRecommendations = "recommendations"
	kindComparison      = "comparison"
	kindEvolution       = "evolution"
)

type EvolutionView struct {
	Series          *evolution.Series
	ReevaluationDue bool
}

type ComparisonView struct {
	Archetype comparison.Archetype
	Result    comparison.Result
}

type AnalyticsUsecase interface {
	Recommendations(ctx context.Context, userID uuid.UUID) ([]recommendation.Specialist, error)
	Archetypes(ctx context.Context, userID uuid.UUID) ([]comparison.Archetype, error)
	Compare(ctx context.Context, userID, archetypeID uuid.UUID) (ComparisonView, error)
	Evolution(ctx context.Context, userID uuid.UUID) (EvolutionView, error)
}

// Analytics runs the pure engines over store data. Results are memoized per user in
// the cache and dropped when the user's inputs change.
type Analytics struct {
	store  DataStore
	cache  Cache
	ttl    time.Duration
	logger *zap.Logger
	now    func() time.Time
}

func NewAnalyticsUsecase(store DataStore, cache Cache, ttl time.Duration, logger *zap.Logger) *Analytics {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analytics{store: store, cache: cache, ttl: ttl, logger: logger, now: time.Now}
}

func (u *Analytics) Recommendations(ctx context.Context, userID uuid.UUID) ([]recommendation.Specialist, error) {
	key := AnalyticsCacheKey(kindRecommendations, userID, nil)
	var cached []recommendation.Specialist
	if u.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	prof, err := u.profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	history, err := u.history(ctx, userID)
	if err != nil {
		return nil, err
	}

	p := recommendation.Profile{Sport: prof.SelectedSport}
	if n := len(history); n > 0 {
		latest := history[n-1].Record
		p.Intake = &latest
	}

	out := recommendation.Recommend(p)
	u.cacheSet(ctx, key, out)
	return out, nil
}

// Archetypes lists reference profiles for the user's selected sport.
func (u *Analytics) Archetypes(ctx context.Context, userID uuid.UUID) ([]comparison.Archetype, error) {
	prof, err := u.profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if prof.SelectedSport == "" {
		return nil, ErrSportNotSelected
	}
	return u.archetypesForSport(ctx, prof.SelectedSport)
}

func (u *Analytics) Compare(ctx context.Context, userID, archetypeID uuid.UUID) (ComparisonView, error) {
	key := AnalyticsCacheKey(kindComparison, userID, archetypeID)
	var cached ComparisonView
	if u.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	prof, err := u.profile(ctx, userID)
	if err != nil {
		return ComparisonView{}, err
	}
	if prof.SelectedSport == "" {
		return ComparisonView{}, ErrSportNotSelected
	}

	items, err := u.archetypesForSport(ctx, prof.SelectedSport)
	if err != nil {
		return ComparisonView{}, err
	}
	a, ok := comparison.FindByID(items, archetypeID)
	if !ok {
		return ComparisonView{}, ErrArchetypeNotFound
	}

	view := ComparisonView{Archetype: a, Result: comparison.Compare(prof.PerformanceMetrics, a)}
	u.cacheSet(ctx, key, view)
	return view, nil
}

// Evolution returns a nil Series when there is not enough history to chart.
func (u *Analytics) Evolution(ctx context.Context, userID uuid.UUID) (EvolutionView, error) {
	prof, err := u.profile(ctx, userID)
	if err != nil {
		return EvolutionView{}, err
	}
	view := EvolutionView{ReevaluationDue: evolution.ReevaluationDue(prof.NextEvaluationDate, u.now())}

	key := AnalyticsCacheKey(kindEvolution, userID, nil)
	var cached evolution.Series
	if u.cacheGet(ctx, key, &cached) {
		view.Series = &cached
		return view, nil
	}

	history, err := u.history(ctx, userID)
	if err != nil {
		return EvolutionView{}, err
	}
	if series, ok := evolution.Build(history); ok {
		view.Series = &series
		u.cacheSet(ctx, key, series)
	}
	return view, nil
}

func (u *Analytics) archetypesForSport(ctx context.Context, sport string) ([]comparison.Archetype, error) {
	key := ArchetypesCacheKey(sport)
	var cached []comparison.Archetype
	if u.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	items, err := u.store.GetArchetypes(ctx, sport)
	if err != nil {
		u.logger.Error("[Analytics] archetypes fetch failed", zap.String("sport", sport), zap.Error(err))
		return nil, ErrInternal
	}
	items = comparison.FilterBySport(items, sport)
	u.cacheSet(ctx, key, items)
	return items, nil
}

// profile treats a missing profile row as an empty profile.
func (u *Analytics) profile(ctx context.Context, userID uuid.UUID) (user.Profile, error) {
	p, err := u.store.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrProfileAbsent) {
			return user.Profile{UserID: userID, PerformanceMetrics: map[string]float64{}}, nil
		}
		u.logger.Error("[Analytics] profile fetch failed", zap.String("user_id", userID.String()), zap.Error(err))
		return user.Profile{}, ErrInternal
	}
	return p, nil
}

func (u *Analytics) history(ctx context.Context, userID uuid.UUID) ([]evolution.Assessment, error) {
	items, err := u.store.ListIntakeHistory(ctx, userID)
	if err != nil {
		u.logger.Error("[Analytics] history fetch failed", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Analytics) cacheGet(ctx context.Context, key string, out any) bool {
	if u.cache == nil {
		return false
	}
	hit, err := u.cache.GetJSON(ctx, key, out)
	if err != nil {
		u.logger.Debug("[Analytics] cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return hit
}

func (u *Analytics) cacheSet(ctx context.Context, key string, value any) {
	if u.cache == nil {
		return
	}
	if err := u.cache.SetJSON(ctx, key, value, u.ttl); err != nil {
		u.logger.Debug("[Analytics] cache write failed", zap.String("key", key), zap.Error(err))
	}
}
