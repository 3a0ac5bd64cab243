package ports

import (
	"context"

	"github.com/brightpixel/website-api/internal/core/domain"
)

// ContentRepository persists the singleton website-content document.
type ContentRepository interface {
	// Find returns the document, or domain.ErrContentNotFound when none
	// has been saved yet.
	Find(ctx context.Context) (domain.ContentDocument, error)
	// UpsertSection replaces one named section, creating the document on
	// first write. Other sections are left untouched.
	UpsertSection(ctx context.Context, section string, data any) error
}
