package ports

import (
	"context"

	"github.com/sweetshop/inventory-api/internal/core/domain"
)

// AuthService defines registration and login use cases.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}

// TokenService issues and validates signed bearer tokens.
type TokenService interface {
	// Issue returns a signed token carrying the subject and its roles,
	// expiring after the configured TTL.
	Issue(username string, roles []string) (string, error)
	// Validate fails closed: any signature mismatch, parse failure or
	// expiry yields domain.ErrInvalidToken.
	Validate(token string) (domain.Principal, error)
	// ValidateFor additionally requires the token subject to exactly match
	// the expected username.
	ValidateFor(token, username string) error
}
