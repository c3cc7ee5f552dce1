package auth

import (
	"context"
	"errors"
	"sync"
	"testing"

	"sportmed/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type memUsers struct {
	mu      sync.Mutex
	byID    map[uuid.UUID]user.User
	failGet bool
}

func newMemUsers() *memUsers {
	return &memUsers{byID: map[uuid.UUID]user.User{}}
}

func (m *memUsers) Create(_ context.Context, u user.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.byID {
		if existing.Email == u.Email {
			return user.ErrEmailTaken
		}
	}
	m.byID[u.ID] = u
	return nil
}

func (m *memUsers) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failGet {
		return user.User{}, errors.New("db down")
	}
	u, ok := m.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func newTestService(users user.Repository) *Service {
	s := NewService(users)
	s.cost = bcrypt.MinCost
	return s
}

func TestRegisterAndLogin(t *testing.T) {
	s := newTestService(newMemUsers())
	ctx := context.Background()

	u, err := s.Register(ctx, RegisterInput{Email: " Ana@Example.com ", Password: "correct horse"})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", u.Email)
	assert.Empty(t, u.PasswordHash)

	got, err := s.Login(ctx, LoginInput{Email: "ana@example.com", Password: "correct horse"})
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = s.Login(ctx, LoginInput{Email: "ana@example.com", Password: "wrong password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.Login(ctx, LoginInput{Email: "nobody@example.com", Password: "whatever1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegister_Rejects(t *testing.T) {
	s := newTestService(newMemUsers())
	ctx := context.Background()

	_, err := s.Register(ctx, RegisterInput{Email: "not-an-email", Password: "longenough"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.Register(ctx, RegisterInput{Email: "a@b.io", Password: "short"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.Register(ctx, RegisterInput{Email: "a@b.io", Password: "longenough"})
	require.NoError(t, err)
	_, err = s.Register(ctx, RegisterInput{Email: "A@B.io", Password: "longenough"})
	assert.ErrorIs(t, err, ErrEmailAlreadyRegistered)
}

func TestRegister_StoreFailure(t *testing.T) {
	users := newMemUsers()
	users.failGet = true
	_, err := newTestService(users).Register(context.Background(), RegisterInput{Email: "a@b.io", Password: "longenough"})
	assert.ErrorIs(t, err, ErrInternal)
}
