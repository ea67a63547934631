package gallery

import (
	"context"

	"github.com/aurabyshenoi/portfolio-api/internal/domain"
)

// Service provides gallery business logic.
type Service struct {
	repo Repository
}

// NewService creates a gallery service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListPaintings returns paintings matching the filter. The limit is clamped
// to [1, MaxPaintingsLimit]; zero or negative falls back to the default.
func (s *Service) ListPaintings(ctx context.Context, filter Filter) ([]domain.Painting, error) {
	if filter.Limit <= 0 {
		filter.Limit = DefaultPaintingsLimit
	}
	if filter.Limit > MaxPaintingsLimit {
		filter.Limit = MaxPaintingsLimit
	}
	return s.repo.ListPaintings(ctx, filter)
}
