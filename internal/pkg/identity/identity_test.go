package identity

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestContextProvider(t *testing.T) {
	id := uuid.New()

	got, ok := ContextProvider{}.CurrentUser(WithUser(context.Background(), id))
	assert.True(t, ok)
	assert.Equal(t, id, got)

	_, ok = ContextProvider{}.CurrentUser(context.Background())
	assert.False(t, ok)

	_, ok = FromContext(WithUser(context.Background(), uuid.Nil))
	assert.False(t, ok)
}
