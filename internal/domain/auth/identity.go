package auth

import (
	"context"

	"github.com/raminfosys/attendance-backend-go/internal/domain/user"
)

// Identity is the authenticated caller, resolved from a verified access token.
type Identity struct {
	UserID string
	Role   user.Role
}

type identityKey struct{}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok && id.UserID != ""
}
