package user

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"sportmed/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("user not found")
	ErrInternal     = errors.New("internal error")
)

const (
	maxMetrics       = 50
	maxMetricNameLen = 64
)

// Me is the authenticated user together with their profile.
type Me struct {
	User    user.User
	Profile user.Profile
}

// UpdateProfileInput patches the assessment part of a profile. Nil fields keep
// their stored value; ClearNextEvaluation removes the scheduled date.
type UpdateProfileInput struct {
	PerformanceMetrics  map[string]float64
	NextEvaluationDate  *time.Time
	ClearNextEvaluation bool
}

type Service struct {
	users    user.Repository
	profiles user.ProfileRepository
}

func NewService(users user.Repository, profiles user.ProfileRepository) *Service {
	return &Service{users: users, profiles: profiles}
}

func (s *Service) GetMe(ctx context.Context, userID uuid.UUID) (Me, error) {
	usr, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return Me{}, ErrNotFound
		}
		return Me{}, ErrInternal
	}

	prof, err := s.profile(ctx, userID)
	if err != nil {
		return Me{}, err
	}
	return Me{User: sanitizeUser(usr), Profile: prof}, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (user.Profile, error) {
	if in.PerformanceMetrics == nil && in.NextEvaluationDate == nil && !in.ClearNextEvaluation {
		return user.Profile{}, ErrInvalidInput
	}
	if in.ClearNextEvaluation && in.NextEvaluationDate != nil {
		return user.Profile{}, fmt.Errorf("%w: next evaluation date both set and cleared", ErrInvalidInput)
	}

	prof, err := s.profile(ctx, userID)
	if err != nil {
		return user.Profile{}, err
	}

	if in.PerformanceMetrics != nil {
		metrics, err := normalizeMetrics(in.PerformanceMetrics)
		if err != nil {
			return user.Profile{}, err
		}
		prof.PerformanceMetrics = metrics
	}
	switch {
	case in.ClearNextEvaluation:
		prof.NextEvaluationDate = nil
	case in.NextEvaluationDate != nil:
		next := in.NextEvaluationDate.UTC()
		prof.NextEvaluationDate = &next
	}

	if err := s.profiles.SaveAssessment(ctx, userID, prof.PerformanceMetrics, prof.NextEvaluationDate); err != nil {
		return user.Profile{}, ErrInternal
	}
	return prof, nil
}

func (s *Service) profile(ctx context.Context, userID uuid.UUID) (user.Profile, error) {
	prof, err := s.profiles.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrProfileAbsent) {
			return user.Profile{UserID: userID, PerformanceMetrics: map[string]float64{}}, nil
		}
		return user.Profile{}, ErrInternal
	}
	if prof.PerformanceMetrics == nil {
		prof.PerformanceMetrics = map[string]float64{}
	}
	return prof, nil
}

// normalizeMetrics trims metric names and rejects blank, overlong, duplicate or
// non-finite entries.
func normalizeMetrics(in map[string]float64) (map[string]float64, error) {
	if len(in) > maxMetrics {
		return nil, fmt.Errorf("%w: at most %d performance metrics", ErrInvalidInput, maxMetrics)
	}
	out := make(map[string]float64, len(in))
	for name, v := range in {
		name = strings.TrimSpace(name)
		if name == "" || len(name) > maxMetricNameLen {
			return nil, fmt.Errorf("%w: metric names must be 1 to %d characters", ErrInvalidInput, maxMetricNameLen)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: metric %q is not a number", ErrInvalidInput, name)
		}
		if _, dup := out[name]; dup {
			return nil, fmt.Errorf("%w: duplicate metric %q", ErrInvalidInput, name)
		}
		out[name] = v
	}
	return out, nil
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
