package usecase

import (
	"context"
	"errors"
	"fmt"

	"sportmed/internal/domain/evolution"
	"sportmed/internal/domain/intake"
	"sportmed/internal/pkg/identity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StepError reports the step a submission stopped at and the first violation.
type StepError struct {
	Step    intake.Step
	Field   string
	Message string
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d: %s", e.Step, e.Message)
}

type IntakeUsecase interface {
	Submit(ctx context.Context, rec intake.Record) (intake.Record, error)
	ValidateStep(ctx context.Context, step int, rec intake.Record) error
	History(ctx context.Context, userID uuid.UUID) ([]evolution.Assessment, error)
}

type Intake struct {
	store    DataStore
	cache    Cache
	notifier Notifier
	identity intake.IdentityProvider
	schema   *intake.Schema
	logger   *zap.Logger
}

func NewIntakeUsecase(store DataStore, cache Cache, notifier Notifier, logger *zap.Logger) *Intake {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Intake{
		store:    store,
		cache:    cache,
		notifier: notifier,
		identity: identity.ContextProvider{},
		schema:   intake.DefaultSchema(),
		logger:   logger,
	}
}

type answer struct {
	lifestyle bool
	name      string
	value     any
}

// stepAnswers groups a complete record by the step that collects each answer.
func stepAnswers(rec intake.Record) map[intake.Step][]answer {
	return map[intake.Step][]answer{
		intake.Step1: {
			{name: intake.FieldAge, value: rec.Age},
			{name: intake.FieldWeightKg, value: rec.WeightKg},
			{name: intake.FieldHeightCm, value: rec.HeightCm},
			{name: intake.FieldBodyFatPercent, value: rec.BodyFatPercent},
		},
		intake.Step2: {
			{name: intake.FieldMedicalHistory, value: rec.MedicalHistory},
			{name: intake.FieldCurrentMedications, value: rec.CurrentMedications},
			{name: intake.FieldAllergies, value: rec.Allergies},
			{name: intake.FieldPreviousInjuries, value: rec.PreviousInjuries},
		},
		intake.Step3: {
			{name: intake.FieldExerciseFrequency, value: rec.ExerciseFrequency},
			{name: intake.FieldExerciseIntensity, value: rec.ExerciseIntensity},
			{name: intake.FieldFitnessGoals, value: rec.FitnessGoals},
		},
		intake.Step4: {
			{lifestyle: true, name: "smoking", value: rec.Lifestyle.Smoking},
			{lifestyle: true, name: "alcohol", value: rec.Lifestyle.Alcohol},
			{lifestyle: true, name: "sleep", value: rec.Lifestyle.Sleep},
			{lifestyle: true, name: "stress", value: rec.Lifestyle.Stress},
		},
	}
}

// Submit walks a form through every step with the answers in rec, advancing only
// when a step validates, and submits on the last step for the user in ctx.
func (u *Intake) Submit(ctx context.Context, rec intake.Record) (intake.Record, error) {
	form := intake.NewForm(u.store, u.identity, intake.WithSchema(u.schema), intake.WithLogger(u.logger))
	answers := stepAnswers(rec)

	for step := intake.FirstStep; step <= intake.LastStep; step++ {
		for _, a := range answers[step] {
			var err error
			if a.lifestyle {
				err = form.SetLifestyleField(a.name, a.value)
			} else {
				err = form.SetField(a.name, a.value)
			}
			if err != nil {
				return intake.Record{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
		}
		if step == intake.Step3 {
			// intensity has a default, so the step gate never checks it
			if err := u.schema.ValidateField(intake.FieldExerciseIntensity, rec.ExerciseIntensity); err != nil {
				return intake.Record{}, toStepError(step, err)
			}
		}
		if step == intake.LastStep {
			break
		}
		if err := form.Advance(); err != nil {
			return intake.Record{}, toStepError(step, err)
		}
	}

	if err := form.Submit(ctx); err != nil {
		var perr *intake.PersistenceError
		switch {
		case errors.Is(err, intake.ErrUnauthenticated):
			return intake.Record{}, ErrUnauthorized
		case errors.As(err, &perr):
			return intake.Record{}, fmt.Errorf("%w: %v", ErrInternal, perr)
		default:
			return intake.Record{}, toStepError(form.Step(), err)
		}
	}

	userID, _ := u.identity.CurrentUser(ctx)
	if u.cache != nil {
		if err := u.cache.DeleteByPattern(ctx, UserAnalyticsPattern(userID)); err != nil {
			u.logger.Warn("[Intake] cache invalidation failed", zap.String("user_id", userID.String()), zap.Error(err))
		}
	}
	if u.notifier != nil {
		u.notifier.Notify(userID, EventIntakeSubmitted, nil)
	}

	return form.Record(), nil
}

// ValidateStep checks only the fields gated by step.
func (u *Intake) ValidateStep(_ context.Context, step int, rec intake.Record) error {
	s := intake.Step(step)
	if !s.Valid() {
		return ErrInvalidInput
	}
	if err := u.schema.ValidateSubset(rec, intake.StepFields(s)...); err != nil {
		return toStepError(s, err)
	}
	return nil
}

func (u *Intake) History(ctx context.Context, userID uuid.UUID) ([]evolution.Assessment, error) {
	items, err := u.store.ListIntakeHistory(ctx, userID)
	if err != nil {
		u.logger.Error("[Intake] history failed", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, ErrInternal
	}
	return items, nil
}

func toStepError(step intake.Step, err error) error {
	var verr *intake.ValidationError
	if errors.As(err, &verr) {
		return &StepError{Step: step, Field: verr.Field, Message: verr.Message}
	}
	return fmt.Errorf("%w: %v", ErrInternal, err)
}
