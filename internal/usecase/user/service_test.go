package user

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"sportmed/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUsers struct {
	users map[uuid.UUID]user.User
	err   error
}

func (s stubUsers) Create(context.Context, user.User) error { return nil }

func (s stubUsers) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	if s.err != nil {
		return user.User{}, s.err
	}
	u, ok := s.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (s stubUsers) GetByEmail(context.Context, string) (user.User, error) {
	return user.User{}, user.ErrNotFound
}

type stubProfiles struct {
	profile user.Profile
	getErr  error
	saveErr error

	savedMetrics map[string]float64
	savedNext    *time.Time
	saves        int
}

func (s *stubProfiles) Get(context.Context, uuid.UUID) (user.Profile, error) {
	return s.profile, s.getErr
}

func (s *stubProfiles) SetSport(context.Context, uuid.UUID, string) error { return nil }

func (s *stubProfiles) SaveAssessment(_ context.Context, _ uuid.UUID, metrics map[string]float64, next *time.Time) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves++
	s.savedMetrics = metrics
	s.savedNext = next
	return nil
}

func TestGetMe(t *testing.T) {
	id := uuid.New()
	users := stubUsers{users: map[uuid.UUID]user.User{id: {ID: id, Email: "a@b.io", PasswordHash: "secret"}}}
	profiles := &stubProfiles{profile: user.Profile{UserID: id, SelectedSport: "mma"}}

	me, err := NewService(users, profiles).GetMe(context.Background(), id)
	require.NoError(t, err)
	assert.Empty(t, me.User.PasswordHash)
	assert.Equal(t, "mma", me.Profile.SelectedSport)
	assert.NotNil(t, me.Profile.PerformanceMetrics)

	_, err = NewService(users, profiles).GetMe(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = NewService(stubUsers{err: errors.New("db down")}, profiles).GetMe(context.Background(), id)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestGetMe_MissingProfileIsEmpty(t *testing.T) {
	id := uuid.New()
	users := stubUsers{users: map[uuid.UUID]user.User{id: {ID: id}}}

	me, err := NewService(users, &stubProfiles{getErr: user.ErrProfileAbsent}).GetMe(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, me.Profile.UserID)
	assert.Empty(t, me.Profile.SelectedSport)
}

func TestUpdateProfile_MergesPatch(t *testing.T) {
	id := uuid.New()
	old := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	profiles := &stubProfiles{profile: user.Profile{
		UserID:             id,
		SelectedSport:      "football",
		NextEvaluationDate: &old,
		PerformanceMetrics: map[string]float64{"speed": 4},
	}}
	svc := NewService(stubUsers{}, profiles)

	got, err := svc.UpdateProfile(context.Background(), id, UpdateProfileInput{
		PerformanceMetrics: map[string]float64{" speed ": 6, "endurance": 7},
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"speed": 6, "endurance": 7}, got.PerformanceMetrics)
	assert.Equal(t, &old, got.NextEvaluationDate)
	assert.Equal(t, "football", got.SelectedSport)
	assert.Equal(t, got.PerformanceMetrics, profiles.savedMetrics)

	got, err = svc.UpdateProfile(context.Background(), id, UpdateProfileInput{ClearNextEvaluation: true})
	require.NoError(t, err)
	assert.Nil(t, got.NextEvaluationDate)
	assert.Equal(t, map[string]float64{"speed": 4}, got.PerformanceMetrics)
	assert.Equal(t, 2, profiles.saves)
}

func TestUpdateProfile_StoresDateInUTC(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	next := time.Date(2024, 5, 2, 3, 0, 0, 0, loc)
	profiles := &stubProfiles{getErr: user.ErrProfileAbsent}

	got, err := NewService(stubUsers{}, profiles).UpdateProfile(context.Background(), uuid.New(), UpdateProfileInput{NextEvaluationDate: &next})
	require.NoError(t, err)
	require.NotNil(t, got.NextEvaluationDate)
	assert.Equal(t, time.UTC, got.NextEvaluationDate.Location())
	assert.True(t, next.Equal(*profiles.savedNext))
}

func TestUpdateProfile_Invalid(t *testing.T) {
	next := time.Now()
	cases := []struct {
		name string
		in   UpdateProfileInput
	}{
		{name: "empty patch", in: UpdateProfileInput{}},
		{name: "set and clear", in: UpdateProfileInput{NextEvaluationDate: &next, ClearNextEvaluation: true}},
		{name: "blank name", in: UpdateProfileInput{PerformanceMetrics: map[string]float64{"  ": 1}}},
		{name: "nan", in: UpdateProfileInput{PerformanceMetrics: map[string]float64{"speed": math.NaN()}}},
		{name: "duplicate after trim", in: UpdateProfileInput{PerformanceMetrics: map[string]float64{"speed": 1, "speed ": 2}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			profiles := &stubProfiles{}
			_, err := NewService(stubUsers{}, profiles).UpdateProfile(context.Background(), uuid.New(), tc.in)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Zero(t, profiles.saves)
		})
	}
}

func TestUpdateProfile_StoreFailure(t *testing.T) {
	profiles := &stubProfiles{saveErr: errors.New("db down")}
	_, err := NewService(stubUsers{}, profiles).UpdateProfile(context.Background(), uuid.New(), UpdateProfileInput{ClearNextEvaluation: true})
	assert.ErrorIs(t, err, ErrInternal)
}
