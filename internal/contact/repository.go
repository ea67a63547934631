package contact

import (
	"context"

	"github.com/aurabyshenoi/portfolio-api/internal/domain"
)

// Repository defines contact submission data operations.
type Repository interface {
	// NextSequence returns the next value of the contact number sequence.
	// The sequence is atomic: concurrent submissions never see the same value.
	NextSequence(ctx context.Context) (int64, error)

	// Create inserts a submission and fills ID and timestamps.
	Create(ctx context.Context, c *domain.Contact) error

	// Count returns the total number of stored submissions.
	Count(ctx context.Context) (int64, error)
}
