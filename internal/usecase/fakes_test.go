package usecase

import (
	"context"
	"encoding/json"
	"path"
	"sync"
	"time"

	"sportmed/internal/domain/comparison"
	"sportmed/internal/domain/evolution"
	"sportmed/internal/domain/feedback"
	"sportmed/internal/domain/intake"
	"sportmed/internal/domain/user"

	"github.com/google/uuid"
)

type fakeStore struct {
	mu sync.Mutex

	createErr  error
	created    []intake.Record
	createdFor []uuid.UUID

	history    []evolution.Assessment
	historyErr error
	archetypes []comparison.Archetype
	profile    user.Profile
	profileErr error

	profileCalls int
	historyCalls int
}

func (s *fakeStore) CreateIntake(_ context.Context, userID uuid.UUID, rec intake.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createErr != nil {
		return s.createErr
	}
	s.created = append(s.created, rec)
	s.createdFor = append(s.createdFor, userID)
	return nil
}

func (s *fakeStore) ListIntakeHistory(context.Context, uuid.UUID) ([]evolution.Assessment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.historyCalls++
	return s.history, s.historyErr
}

func (s *fakeStore) GetArchetypes(context.Context, string) ([]comparison.Archetype, error) {
	return s.archetypes, nil
}

func (s *fakeStore) GetProfile(context.Context, uuid.UUID) (user.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profileCalls++
	return s.profile, s.profileErr
}

type memCache struct {
	mu       sync.Mutex
	items    map[string][]byte
	patterns []string
}

func newMemCache() *memCache {
	return &memCache{items: map[string][]byte{}}
}

func (c *memCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.items[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *memCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = b
	return nil
}

func (c *memCache) DeleteByPattern(_ context.Context, pattern string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.patterns = append(c.patterns, pattern)
	for k := range c.items {
		if ok, _ := path.Match(pattern, k); ok {
			delete(c.items, k)
		}
	}
	return nil
}

type notification struct {
	userID    uuid.UUID
	eventType string
	data      any
}

type fakeNotifier struct {
	mu     sync.Mutex
	events []notification
}

func (n *fakeNotifier) Notify(userID uuid.UUID, eventType string, data any) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, notification{userID: userID, eventType: eventType, data: data})
}

type fakeProfiles struct {
	sport   map[uuid.UUID]string
	profile user.Profile
	getErr  error
	saved   []user.Profile
	err     error
}

func (p *fakeProfiles) Get(context.Context, uuid.UUID) (user.Profile, error) {
	return p.profile, p.getErr
}

func (p *fakeProfiles) SaveAssessment(_ context.Context, userID uuid.UUID, metrics map[string]float64, next *time.Time) error {
	if p.err != nil {
		return p.err
	}
	p.saved = append(p.saved, user.Profile{UserID: userID, PerformanceMetrics: metrics, NextEvaluationDate: next})
	return nil
}

func (p *fakeProfiles) SetSport(_ context.Context, userID uuid.UUID, sport string) error {
	if p.err != nil {
		return p.err
	}
	if p.sport == nil {
		p.sport = map[uuid.UUID]string{}
	}
	p.sport[userID] = sport
	return nil
}

type fakeFeedbackRepo struct {
	created []feedback.Feedback
	err     error
}

func (r *fakeFeedbackRepo) Create(_ context.Context, f feedback.Feedback) error {
	if r.err != nil {
		return r.err
	}
	r.created = append(r.created, f)
	return nil
}

func (r *fakeFeedbackRepo) ListByUser(context.Context, uuid.UUID, int) ([]feedback.Feedback, error) {
	return r.created, r.err
}
