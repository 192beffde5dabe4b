// Package auth provides concrete implementations of the identity provider.
package auth

import (
	"context"
	"strings"

	domainerrors "pinmap/internal/domain/errors"
	"pinmap/internal/domain/service"
	"pinmap/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// accessClaims are the claims of a Supabase-issued access token.
type accessClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// jwtIdentity verifies HS256 access tokens locally with the project's JWT secret.
type jwtIdentity struct {
	secret   []byte
	audience string
	issuer   string
}

// NewJWTIdentity is the constructor for jwtIdentity.
func NewJWTIdentity(secret, audience, issuer string) (service.IdentityProvider, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtIdentity{
		secret:   []byte(secret),
		audience: audience,
		issuer:   issuer,
	}, nil
}

// Authenticate validates the token and returns the user in its subject claim.
func (p *jwtIdentity) Authenticate(ctx context.Context, token string) (*service.Identity, error) {
	if strings.TrimSpace(token) == "" {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("missing token")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if p.audience != "" {
		opts = append(opts, jwt.WithAudience(p.audience))
	}
	if p.issuer != "" {
		opts = append(opts, jwt.WithIssuer(p.issuer))
	}

	var claims accessClaims
	if _, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return p.secret, nil
	}, opts...); err != nil {
		return nil, domainerrors.ErrUnauthorized.WrapMessage(err.Error())
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("subject is not a user id")
	}

	return &service.Identity{
		UserID: userID,
		Email:  claims.Email,
		Role:   claims.Role,
	}, nil
}
