package auth

import (
	"pinmap/config"
	"pinmap/internal/domain/service"
	"pinmap/internal/errors"

	"github.com/supabase-community/supabase-go"
	"go.uber.org/fx"
)

// Params defines the dependencies of the identity provider.
type Params struct {
	fx.In

	Config   *config.Config
	Supabase *supabase.Client `optional:"true"`
}

// NewIdentityProvider picks the provider named by auth.provider.
func NewIdentityProvider(params Params) (service.IdentityProvider, error) {
	cfg := params.Config.Auth

	switch cfg.Provider {
	case config.AuthProviderJWT:
		return NewJWTIdentity(cfg.JWTSecret, cfg.Audience, cfg.Issuer)
	case config.AuthProviderSupabase:
		if params.Supabase == nil {
			return nil, errors.New("auth provider supabase requires a supabase section")
		}

		return NewSupabaseIdentity(params.Supabase), nil
	default:
		return nil, errors.Errorf("unknown auth provider %q", cfg.Provider)
	}
}
