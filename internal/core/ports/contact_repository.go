package ports

import (
	"context"

	"github.com/brightpixel/website-api/internal/core/domain"
)

// ContactRepository defines persistence operations for contact submissions.
type ContactRepository interface {
	Insert(ctx context.Context, submission *domain.ContactSubmission) error
	// FindAll returns every submission, most recent first.
	FindAll(ctx context.Context) ([]*domain.ContactSubmission, error)
	// DeleteByID removes one submission; domain.ErrContactNotFound when absent.
	DeleteByID(ctx context.Context, id string) error
}
