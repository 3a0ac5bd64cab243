package ports

import (
	"context"

	"github.com/brightpixel/website-api/internal/core/domain"
)

// ContentService defines use-case operations for website content.
type ContentService interface {
	// Get returns the stored document, or the hardcoded default before the
	// first save.
	Get(ctx context.Context) (domain.ContentDocument, error)
	UpdateSection(ctx context.Context, section string, data any) error
}
