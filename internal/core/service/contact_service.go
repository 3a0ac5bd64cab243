package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/brightpixel/website-api/internal/core/domain"
	"github.com/brightpixel/website-api/internal/core/ports"
)

// ContactService handles public form submissions and the admin views over them.
type ContactService struct {
	repo    ports.ContactRepository
	limiter ports.RateLimiter // nil disables throttling
	logger  zerolog.Logger
}

func NewContactService(repo ports.ContactRepository, limiter ports.RateLimiter, logger zerolog.Logger) *ContactService {
	return &ContactService{repo: repo, limiter: limiter, logger: logger}
}

// Submit persists a contact-form entry and returns the stored record.
// Submissions are throttled per remote address when a limiter is configured;
// a limiter backend failure fails open so the form stays available.
func (s *ContactService) Submit(ctx context.Context, input ports.SubmitContactInput) (*domain.ContactSubmission, error) {
	if s.limiter != nil && input.RemoteAddr != "" {
		allowed, err := s.limiter.Allow(ctx, input.RemoteAddr)
		if err != nil {
			s.logger.Warn().Err(err).Msg("rate limiter unavailable, allowing submission")
		} else if !allowed {
			return nil, domain.ErrRateLimited
		}
	}

	submission := &domain.ContactSubmission{
		ID:              uuid.NewString(),
		Name:            input.Name,
		Email:           input.Email,
		Phone:           input.Phone,
		ServiceInterest: input.ServiceInterest,
		Budget:          input.Budget,
		Message:         input.Message,
		Timestamp:       time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, submission); err != nil {
		s.logger.Error().Err(err).Msg("failed to store contact submission")
		return nil, err
	}

	s.logger.Info().Str("id", submission.ID).Str("service_interest", submission.ServiceInterest).Msg("contact submission received")
	return submission, nil
}

// ListAll returns all submissions, most recent first.
func (s *ContactService) ListAll(ctx context.Context) ([]*domain.ContactSubmission, error) {
	return s.repo.FindAll(ctx)
}

// Delete removes one submission by id.
func (s *ContactService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrContactNotFound
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("id", id).Msg("contact submission deleted")
	return nil
}
