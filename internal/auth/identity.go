// Package auth provides the caller identity model and JWT token handling.
// Identity is resolved exactly once at the transport boundary and travels
// through the request context; core services never consult ambient state.
package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/harviniv9/task-booking-management/internal/domain"
)

// Identity is the resolved caller: who is making the request and with
// which role.
type Identity struct {
	UserID   uuid.UUID
	Username string
	Role     domain.UserRole
}

type identityCtxKey struct{}

// WithIdentity stores the caller identity in the context.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey{}, id)
}

// IdentityFromCtx extracts the caller identity from the context.
// Returns false if the request is anonymous.
func IdentityFromCtx(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityCtxKey{}).(Identity)
	if !ok || id.UserID == uuid.Nil {
		return Identity{}, false
	}
	return id, true
}
