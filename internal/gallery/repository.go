package gallery

import (
	"context"

	"github.com/aurabyshenoi/portfolio-api/internal/domain"
)

// Pagination constants.
const (
	DefaultPaintingsLimit = 100
	MaxPaintingsLimit     = 100
)

// Filter represents list criteria for paintings.
type Filter struct {
	Featured *bool
	Limit    int
}

// Repository defines read-only painting data operations.
type Repository interface {
	ListPaintings(ctx context.Context, filter Filter) ([]domain.Painting, error)
}
