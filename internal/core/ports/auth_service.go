package ports

import (
	"context"

	"github.com/acmecorp/invoicing-dashboard/internal/core/domain"
)

// AuthService verifies credentials and mints session tokens.
type AuthService interface {
	// Login returns a signed session token and the user on success.
	// Malformed credentials, an unknown email and a wrong password all fail
	// with domain.ErrInvalidCredentials so callers cannot tell them apart.
	// A persistence outage during lookup surfaces as a distinct error.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
