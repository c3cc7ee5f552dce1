package intake

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrUnauthenticated  = errors.New("you must be logged in to submit the form")
	ErrSubmitInProgress = errors.New("submission already in progress")
	ErrAlreadySubmitted = errors.New("form already submitted")
)

// PersistenceError carries a Data Store failure unchanged.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	if e == nil || e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

type IntakeWriter interface {
	CreateIntake(ctx context.Context, userID uuid.UUID, rec Record) error
}

type IdentityProvider interface {
	CurrentUser(ctx context.Context) (uuid.UUID, bool)
}

type Step int

const (
	Step1 Step = iota + 1
	Step2
	Step3
	Step4
)

const (
	FirstStep = Step1
	LastStep  = Step4
)

var stepFields = map[Step][]string{
	Step1: {FieldAge, FieldWeightKg, FieldHeightCm},
	Step2: {FieldMedicalHistory, FieldCurrentMedications, FieldAllergies, FieldPreviousInjuries},
	Step3: {FieldExerciseFrequency, FieldFitnessGoals},
	Step4: {FieldLifestyle},
}

// StepFields returns the fields gated by step.
func StepFields(step Step) []string {
	return slices.Clone(stepFields[step])
}

func (s Step) Valid() bool {
	return s >= FirstStep && s <= LastStep
}

// Snapshot is a read-only view of a form.
type Snapshot struct {
	Step        Step
	Submitted   bool
	Submitting  bool
	Record      Record
	Validation  *ValidationError
	SubmitError error
}

type FormOption func(*Form)

func WithSchema(s *Schema) FormOption {
	return func(f *Form) {
		if s != nil {
			f.schema = s
		}
	}
}

func WithLogger(l *zap.Logger) FormOption {
	return func(f *Form) {
		if l != nil {
			f.logger = l
		}
	}
}

// Form walks one intake questionnaire through its steps. A Form belongs to a single
// caller; a Submit issued while another is in flight is rejected.
type Form struct {
	mu sync.Mutex

	schema   *Schema
	writer   IntakeWriter
	identity IdentityProvider
	logger   *zap.Logger

	step       Step
	submitted  bool
	submitting bool
	record     Record

	validationErr *ValidationError
	submitErr     error
}

func NewForm(writer IntakeWriter, identity IdentityProvider, opts ...FormOption) *Form {
	f := &Form{
		schema:   DefaultSchema(),
		writer:   writer,
		identity: identity,
		logger:   zap.NewNop(),
		step:     FirstStep,
		record:   DefaultRecord(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Form) Step() Step {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step
}

func (f *Form) Submitted() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitted
}

func (f *Form) Record() Record {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.record.Clone()
}

func (f *Form) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return Snapshot{
		Step:        f.step,
		Submitted:   f.submitted,
		Submitting:  f.submitting,
		Record:      f.record.Clone(),
		Validation:  f.validationErr,
		SubmitError: f.submitErr,
	}
}

// PendingMessage is the single message a caller should show. A validation message
// wins over an older submit failure.
func (f *Form) PendingMessage() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.validationErr != nil {
		return f.validationErr.Message
	}
	if f.submitErr != nil {
		return f.submitErr.Error()
	}
	return ""
}

// SetField replaces a top-level answer. Lifestyle answers go through SetLifestyleField.
func (f *Form) SetField(name string, value any) error {
	if strings.Contains(name, ".") || name == FieldLifestyle {
		return ErrUnknownField
	}
	return f.mutate(func(rec *Record) error {
		return f.schema.set(rec, name, value)
	})
}

func (f *Form) SetLifestyleField(name string, value any) error {
	return f.mutate(func(rec *Record) error {
		return f.schema.set(rec, FieldLifestyle+"."+name, value)
	})
}

// ToggleSetMember adds value to a set-valued field, or removes it when present.
func (f *Form) ToggleSetMember(field, value string) error {
	if !f.schema.isSet(field) {
		return ErrUnknownField
	}
	return f.mutate(func(rec *Record) error {
		rule, _ := f.schema.rule(field)
		cur := rule.get(*rec).([]string)
		next := make([]string, 0, len(cur)+1)
		found := false
		for _, v := range cur {
			if v == value {
				found = true
				continue
			}
			next = append(next, v)
		}
		if !found {
			next = append(next, value)
		}
		rule.set(rec, next)
		return nil
	})
}

func (f *Form) mutate(apply func(*Record) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitted {
		return ErrAlreadySubmitted
	}
	if err := apply(&f.record); err != nil {
		return err
	}
	f.validationErr = nil
	return nil
}

// Advance moves to the next step when the current step's fields are valid. On
// failure the step is kept and the validation error is returned.
func (f *Form) Advance() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitted {
		return ErrAlreadySubmitted
	}
	if err := f.validateStepLocked(); err != nil {
		return err
	}
	if f.step < LastStep {
		f.step++
	}
	return nil
}

func (f *Form) Retreat() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitted {
		return
	}
	if f.step > FirstStep {
		f.step--
	}
}

// Submit validates the current step only and then writes the record for the current
// user. Earlier steps are not re-validated here.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.submitted {
		f.mu.Unlock()
		return ErrAlreadySubmitted
	}
	if f.submitting {
		f.mu.Unlock()
		return ErrSubmitInProgress
	}
	if err := f.validateStepLocked(); err != nil {
		f.mu.Unlock()
		return err
	}
	f.submitting = true
	f.submitErr = nil
	rec := f.record.Clone()
	step := f.step
	f.mu.Unlock()

	err := f.persist(ctx, rec)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false
	if err != nil {
		f.submitErr = err
		f.logger.Warn("[Intake] submit failed", zap.Int("step", int(step)), zap.Error(err))
		return err
	}
	f.submitted = true
	return nil
}

func (f *Form) persist(ctx context.Context, rec Record) error {
	if f.identity == nil {
		return ErrUnauthenticated
	}
	userID, ok := f.identity.CurrentUser(ctx)
	if !ok || userID == uuid.Nil {
		return ErrUnauthenticated
	}
	if f.writer == nil {
		return &PersistenceError{Err: errors.New("no intake store configured")}
	}
	if err := f.writer.CreateIntake(ctx, userID, rec); err != nil {
		return &PersistenceError{Err: err}
	}
	return nil
}

func (f *Form) validateStepLocked() error {
	if err := f.schema.ValidateSubset(f.record, stepFields[f.step]...); err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			f.validationErr = ve
		}
		return err
	}
	f.validationErr = nil
	return nil
}
