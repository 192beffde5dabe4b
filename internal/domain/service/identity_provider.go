package service

import (
	"context"

	"github.com/google/uuid"
)

// Identity is the signed-in user as reported by the authentication provider.
type Identity struct {
	UserID uuid.UUID
	Email  string
	Role   string
}

// IdentityProvider resolves a bearer token to the signed-in user.
type IdentityProvider interface {
	Authenticate(ctx context.Context, token string) (*Identity, error)
}
