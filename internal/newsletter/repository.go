package newsletter

import (
	"context"

	"github.com/aurabyshenoi/portfolio-api/internal/domain"
)

// Repository defines newsletter subscription data operations.
type Repository interface {
	// FindByEmail looks up a subscription by lower-cased email.
	// Returns ErrSubscriptionNotFound when no row matches.
	FindByEmail(ctx context.Context, email string) (*domain.Subscription, error)

	// Create inserts a subscription and fills ID and timestamps.
	// Returns ErrAlreadySubscribed on a duplicate email.
	Create(ctx context.Context, sub *domain.Subscription) error
}
