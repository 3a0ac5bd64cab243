package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/brightpixel/website-api/internal/core/domain"
	"github.com/brightpixel/website-api/internal/core/ports"
)

// StatusService records client heartbeat checks.
type StatusService struct {
	repo   ports.StatusRepository
	logger zerolog.Logger
}

func NewStatusService(repo ports.StatusRepository, logger zerolog.Logger) *StatusService {
	return &StatusService{repo: repo, logger: logger}
}

func (s *StatusService) Create(ctx context.Context, clientName string) (*domain.StatusCheck, error) {
	if clientName == "" {
		return nil, domain.ErrInvalidInput
	}

	check := &domain.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: clientName,
		Timestamp:  time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, check); err != nil {
		s.logger.Error().Err(err).Msg("failed to store status check")
		return nil, err
	}
	return check, nil
}

func (s *StatusService) ListAll(ctx context.Context) ([]*domain.StatusCheck, error) {
	return s.repo.FindAll(ctx)
}
