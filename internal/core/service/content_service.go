package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/brightpixel/website-api/internal/core/domain"
	"github.com/brightpixel/website-api/internal/core/ports"
)

// ContentService serves and edits the singleton website-content document.
type ContentService struct {
	repo   ports.ContentRepository
	logger zerolog.Logger
}

func NewContentService(repo ports.ContentRepository, logger zerolog.Logger) *ContentService {
	return &ContentService{repo: repo, logger: logger}
}

// Get returns the stored document, falling back to the hardcoded default
// before an admin has saved anything. First-run fallback is not an error.
func (s *ContentService) Get(ctx context.Context) (domain.ContentDocument, error) {
	doc, err := s.repo.Find(ctx)
	if err != nil {
		if err == domain.ErrContentNotFound {
			return domain.DefaultContent(), nil
		}
		return nil, err
	}
	return doc, nil
}

// UpdateSection replaces one named section. The document is created on the
// first update; other sections are untouched. Section data is opaque and not
// validated here.
func (s *ContentService) UpdateSection(ctx context.Context, section string, data any) error {
	if section == "" || section == "type" || section == "_id" {
		return domain.ErrInvalidInput
	}

	if err := s.repo.UpsertSection(ctx, section, data); err != nil {
		s.logger.Error().Err(err).Str("section", section).Msg("failed to update content section")
		return err
	}

	s.logger.Info().Str("section", section).Msg("content section updated")
	return nil
}
