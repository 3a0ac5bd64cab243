package ports

import (
	"context"

	"github.com/brightpixel/website-api/internal/core/domain"
)

// StatusService records and lists client status checks.
type StatusService interface {
	Create(ctx context.Context, clientName string) (*domain.StatusCheck, error)
	ListAll(ctx context.Context) ([]*domain.StatusCheck, error)
}
