package ports

import (
	"context"

	"github.com/acmecorp/invoicing-dashboard/internal/core/domain"
)

// AuthRepository defines the read-only credential lookup.
type AuthRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
