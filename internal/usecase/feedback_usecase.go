package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sportmed/internal/domain/feedback"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FeedbackInput struct {
	WorkoutDate       *time.Time
	PerceivedExertion int
	FatigueLevel      int
	Notes             string
}

type FeedbackUsecase interface {
	Submit(ctx context.Context, userID uuid.UUID, in FeedbackInput) (feedback.Feedback, error)
	List(ctx context.Context, userID uuid.UUID, limit int) ([]feedback.Feedback, error)
}

type Feedback struct {
	repo     feedback.Repository
	notifier Notifier
	logger   *zap.Logger
	now      func() time.Time
}

func NewFeedbackUsecase(repo feedback.Repository, notifier Notifier, logger *zap.Logger) *Feedback {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Feedback{repo: repo, notifier: notifier, logger: logger, now: time.Now}
}

// Submit records a self report. A missing workout date means today (UTC).
func (u *Feedback) Submit(ctx context.Context, userID uuid.UUID, in FeedbackInput) (feedback.Feedback, error) {
	if userID == uuid.Nil {
		return feedback.Feedback{}, ErrUnauthorized
	}

	date := u.now().UTC()
	if in.WorkoutDate != nil {
		date = in.WorkoutDate.UTC()
	}

	f := feedback.Feedback{
		ID:                uuid.New(),
		UserID:            userID,
		WorkoutDate:       time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		PerceivedExertion: in.PerceivedExertion,
		FatigueLevel:      in.FatigueLevel,
		Notes:             in.Notes,
	}
	if err := feedback.Validate(f); err != nil {
		if errors.Is(err, feedback.ErrInvalid) {
			return feedback.Feedback{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return feedback.Feedback{}, ErrInternal
	}

	if err := u.repo.Create(ctx, f); err != nil {
		u.logger.Error("[Feedback] create failed", zap.String("user_id", userID.String()), zap.Error(err))
		return feedback.Feedback{}, ErrInternal
	}

	if u.notifier != nil {
		u.notifier.Notify(userID, EventFeedbackSubmitted, map[string]string{"workout_date": f.WorkoutDate.Format(time.DateOnly)})
	}
	return f, nil
}

func (u *Feedback) List(ctx context.Context, userID uuid.UUID, limit int) ([]feedback.Feedback, error) {
	items, err := u.repo.ListByUser(ctx, userID, limit)
	if err != nil {
		u.logger.Error("[Feedback] list failed", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, ErrInternal
	}
	return items, nil
}
