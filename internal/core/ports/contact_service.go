package ports

import (
	"context"

	"github.com/brightpixel/website-api/internal/core/domain"
)

// SubmitContactInput is the DTO passed from the transport layer to ContactService.
type SubmitContactInput struct {
	Name            string
	Email           string
	Phone           string
	ServiceInterest string
	Budget          string
	Message         string
	// RemoteAddr identifies the submitter for rate limiting.
	RemoteAddr string
}

// ContactService defines use-case operations for contact submissions.
type ContactService interface {
	Submit(ctx context.Context, input SubmitContactInput) (*domain.ContactSubmission, error)
	ListAll(ctx context.Context) ([]*domain.ContactSubmission, error)
	Delete(ctx context.Context, id string) error
}
