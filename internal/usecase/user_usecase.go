package usecase

import (
	"context"
	"errors"
	"fmt"

	"sportmed/internal/domain/user"
	ucuser "sportmed/internal/usecase/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserUsecase interface {
	GetMe(ctx context.Context, userID uuid.UUID) (ucuser.Me, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, in ucuser.UpdateProfileInput) (user.Profile, error)
}

type User struct {
	svc    *ucuser.Service
	cache  Cache
	logger *zap.Logger
}

func NewUserUsecase(users user.Repository, profiles user.ProfileRepository, cache Cache, logger *zap.Logger) *User {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &User{svc: ucuser.NewService(users, profiles), cache: cache, logger: logger}
}

func (u *User) GetMe(ctx context.Context, userID uuid.UUID) (ucuser.Me, error) {
	me, err := u.svc.GetMe(ctx, userID)
	if err != nil {
		return ucuser.Me{}, mapUserError(err)
	}
	return me, nil
}

// UpdateProfile saves the patch and drops the user's memoized analytics, since
// comparisons read the performance metrics.
func (u *User) UpdateProfile(ctx context.Context, userID uuid.UUID, in ucuser.UpdateProfileInput) (user.Profile, error) {
	if userID == uuid.Nil {
		return user.Profile{}, ErrUnauthorized
	}

	prof, err := u.svc.UpdateProfile(ctx, userID, in)
	if err != nil {
		if errors.Is(err, ucuser.ErrInternal) {
			u.logger.Error("[User] profile update failed", zap.String("user_id", userID.String()), zap.Error(err))
		}
		return user.Profile{}, mapUserError(err)
	}

	if u.cache != nil {
		if err := u.cache.DeleteByPattern(ctx, UserAnalyticsPattern(userID)); err != nil {
			u.logger.Warn("[User] cache invalidation failed", zap.String("user_id", userID.String()), zap.Error(err))
		}
	}
	return prof, nil
}

func mapUserError(err error) error {
	switch {
	case errors.Is(err, ucuser.ErrInvalidInput):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	case errors.Is(err, ucuser.ErrNotFound):
		return ErrUserNotFound
	default:
		return ErrInternal
	}
}
