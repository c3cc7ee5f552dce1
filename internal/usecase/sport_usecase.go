package usecase

import (
	"context"
	"errors"

	"sportmed/internal/domain/sport"
	"sportmed/internal/domain/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SportUsecase interface {
	List() []sport.Sport
	Select(ctx context.Context, userID uuid.UUID, sportID string) (sport.Sport, error)
}

type Sport struct {
	profiles user.ProfileRepository
	cache    Cache
	notifier Notifier
	logger   *zap.Logger
}

func NewSportUsecase(profiles user.ProfileRepository, cache Cache, notifier Notifier, logger *zap.Logger) *Sport {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sport{profiles: profiles, cache: cache, notifier: notifier, logger: logger}
}

func (u *Sport) List() []sport.Sport {
	return sport.All()
}

func (u *Sport) Select(ctx context.Context, userID uuid.UUID, sportID string) (sport.Sport, error) {
	if userID == uuid.Nil {
		return sport.Sport{}, ErrUnauthorized
	}
	s, err := sport.Lookup(sportID)
	if err != nil {
		if errors.Is(err, sport.ErrUnknownSport) {
			return sport.Sport{}, ErrUnknownSport
		}
		return sport.Sport{}, ErrInternal
	}

	if err := u.profiles.SetSport(ctx, userID, s.ID); err != nil {
		u.logger.Error("[Sport] select failed", zap.String("user_id", userID.String()), zap.String("sport", s.ID), zap.Error(err))
		return sport.Sport{}, ErrInternal
	}

	if u.cache != nil {
		if err := u.cache.DeleteByPattern(ctx, UserAnalyticsPattern(userID)); err != nil {
			u.logger.Warn("[Sport] cache invalidation failed", zap.String("user_id", userID.String()), zap.Error(err))
		}
	}
	if u.notifier != nil {
		u.notifier.Notify(userID, EventSportSelected, map[string]string{"sport": s.ID})
	}
	return s, nil
}
