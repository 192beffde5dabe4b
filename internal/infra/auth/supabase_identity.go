package auth

import (
	"context"
	"strings"

	domainerrors "pinmap/internal/domain/errors"
	"pinmap/internal/domain/service"

	"github.com/google/uuid"
	"github.com/supabase-community/gotrue-go/types"
	"github.com/supabase-community/supabase-go"
)

type userGetter interface {
	GetUser() (*types.UserResponse, error)
}

// supabaseIdentity asks Supabase Auth who owns the token.
type supabaseIdentity struct {
	withToken func(token string) userGetter
}

// NewSupabaseIdentity is the constructor for supabaseIdentity.
func NewSupabaseIdentity(client *supabase.Client) service.IdentityProvider {
	return &supabaseIdentity{
		withToken: func(token string) userGetter {
			return client.Auth.WithToken(token)
		},
	}
}

// Authenticate resolves the token through GetUser. The gotrue client takes no
// context, so ctx is only checked before the call.
func (p *supabaseIdentity) Authenticate(ctx context.Context, token string) (*service.Identity, error) {
	if strings.TrimSpace(token) == "" {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("missing token")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	user, err := p.withToken(token).GetUser()
	if err != nil {
		return nil, domainerrors.ErrUnauthorized.WrapMessage(err.Error())
	}
	if user == nil || user.ID == uuid.Nil {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("unknown user")
	}

	return &service.Identity{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}, nil
}
