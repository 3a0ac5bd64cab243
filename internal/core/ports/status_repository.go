package ports

import (
	"context"

	"github.com/brightpixel/website-api/internal/core/domain"
)

// StatusRepository persists client status checks.
type StatusRepository interface {
	Insert(ctx context.Context, check *domain.StatusCheck) error
	// FindAll returns every status check, most recent first.
	FindAll(ctx context.Context) ([]*domain.StatusCheck, error)
}
