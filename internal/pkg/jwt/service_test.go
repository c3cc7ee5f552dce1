package jwt

import (
	"testing"
	"time"

	"sportmed/internal/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() *HMACService {
	return NewHMACService(config.JWTConfig{
		Secret:     "access-secret-0123456789",
		Issuer:     "sportmed",
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 24 * time.Hour,
	})
}

func TestHMACService_RoundTrip(t *testing.T) {
	s := newService()
	id := uuid.New()

	access, err := s.GenerateAccessToken(id, "a@b.io")
	require.NoError(t, err)

	c, err := s.ValidateToken(access, TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, id, c.UserID)
	assert.Equal(t, "a@b.io", c.Email)
	assert.Equal(t, "sportmed", c.Issuer)
}

func TestHMACService_TypesAreNotInterchangeable(t *testing.T) {
	s := newService()
	id := uuid.New()

	refresh, err := s.GenerateRefreshToken(id)
	require.NoError(t, err)

	_, err = s.ValidateToken(refresh, TokenTypeAccess)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	c, err := s.ValidateToken(refresh, TokenTypeRefresh)
	require.NoError(t, err)
	assert.Equal(t, id, c.UserID)
}

func TestHMACService_Expired(t *testing.T) {
	s := newService()
	s.now = func() time.Time { return time.Now().Add(-time.Hour) }
	tok, err := s.GenerateAccessToken(uuid.New(), "")
	require.NoError(t, err)

	s.now = time.Now
	_, err = s.ValidateToken(tok, TokenTypeAccess)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestHMACService_Garbage(t *testing.T) {
	_, err := newService().ValidateToken("not-a-token", TokenTypeAccess)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = newService().ValidateToken("x", "session")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
