package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSportSelect(t *testing.T) {
	profiles := &fakeProfiles{}
	cache := newMemCache()
	notifier := &fakeNotifier{}
	uc := NewSportUsecase(profiles, cache, notifier, nil)
	userID := uuid.New()

	s, err := uc.Select(context.Background(), userID, "MMA")
	require.NoError(t, err)
	assert.Equal(t, "mma", s.ID)
	assert.Equal(t, "mma", profiles.sport[userID])
	assert.Equal(t, []string{UserAnalyticsPattern(userID)}, cache.patterns)
	require.Len(t, notifier.events, 1)
	assert.Equal(t, EventSportSelected, notifier.events[0].eventType)

	_, err = uc.Select(context.Background(), userID, "chess")
	assert.ErrorIs(t, err, ErrUnknownSport)

	_, err = uc.Select(context.Background(), uuid.Nil, "mma")
	assert.ErrorIs(t, err, ErrUnauthorized)

	assert.Len(t, uc.List(), 3)
}

func TestSportSelect_StoreFailure(t *testing.T) {
	uc := NewSportUsecase(&fakeProfiles{err: errors.New("down")}, nil, nil, nil)
	_, err := uc.Select(context.Background(), uuid.New(), "football")
	assert.ErrorIs(t, err, ErrInternal)
}

func TestFeedbackSubmit(t *testing.T) {
	repo := &fakeFeedbackRepo{}
	notifier := &fakeNotifier{}
	uc := NewFeedbackUsecase(repo, notifier, nil)
	uc.now = func() time.Time { return time.Date(2024, 3, 9, 21, 30, 0, 0, time.UTC) }
	userID := uuid.New()

	f, err := uc.Submit(context.Background(), userID, FeedbackInput{PerceivedExertion: 6, FatigueLevel: 3, Notes: "legs heavy"})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), f.WorkoutDate)
	assert.Equal(t, userID, f.UserID)
	require.Len(t, repo.created, 1)
	require.Len(t, notifier.events, 1)
	assert.Equal(t, EventFeedbackSubmitted, notifier.events[0].eventType)
}

func TestFeedbackSubmit_Invalid(t *testing.T) {
	repo := &fakeFeedbackRepo{}
	uc := NewFeedbackUsecase(repo, nil, nil)

	_, err := uc.Submit(context.Background(), uuid.New(), FeedbackInput{PerceivedExertion: 11, FatigueLevel: 3})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "perceived exertion")
	assert.Empty(t, repo.created)

	_, err = uc.Submit(context.Background(), uuid.Nil, FeedbackInput{PerceivedExertion: 5, FatigueLevel: 5})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestCacheKeys(t *testing.T) {
	id := uuid.MustParse("7f1f1c8e-7a3b-4c59-9d3e-2f6a1b0c9d11")

	k1 := AnalyticsCacheKey("comparison", id, "a")
	k2 := AnalyticsCacheKey("comparison", id, "b")
	assert.NotEqual(t, k1, k2)
	assert.Equal(t, k1, AnalyticsCacheKey("comparison", id, "a"))
	assert.Contains(t, k1, "analytics:comparison:"+id.String()+":")
	assert.Equal(t, "archetypes:mma", ArchetypesCacheKey(" MMA "))
}
