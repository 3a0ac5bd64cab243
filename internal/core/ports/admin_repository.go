package ports

import (
	"context"

	"github.com/brightpixel/website-api/internal/core/domain"
)

// AdminRepository defines the interface for admin account persistence.
// Email uniqueness is enforced at write time by the implementation.
type AdminRepository interface {
	Create(ctx context.Context, admin *domain.Admin) error
	FindByEmail(ctx context.Context, email string) (*domain.Admin, error)
}
