package identity

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey struct{}

// WithUser returns a context carrying the authenticated user id.
func WithUser(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, ctxKey{}, userID)
}

func FromContext(ctx context.Context) (uuid.UUID, bool) {
	if ctx == nil {
		return uuid.Nil, false
	}
	id, ok := ctx.Value(ctxKey{}).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// ContextProvider resolves the current user from the request context.
type ContextProvider struct{}

func (ContextProvider) CurrentUser(ctx context.Context) (uuid.UUID, bool) {
	return FromContext(ctx)
}
