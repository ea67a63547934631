package newsletter

import (
	"context"
	"errors"
	"strings"

	"github.com/aurabyshenoi/portfolio-api/internal/domain"
	"github.com/aurabyshenoi/portfolio-api/internal/pkg/ctxlog"
	"github.com/aurabyshenoi/portfolio-api/internal/pkg/metrics"
)

// DefaultSource labels subscriptions created without an explicit source.
const DefaultSource = "homepage"

// WelcomeSender sends a confirmation email to a fresh subscriber.
type WelcomeSender interface {
	SendWelcome(ctx context.Context, email, source string) error
}

// Service provides newsletter business logic.
type Service struct {
	repo    Repository
	welcome WelcomeSender
}

// NewService creates a newsletter service. welcome may be nil.
func NewService(repo Repository, welcome WelcomeSender) *Service {
	return &Service{repo: repo, welcome: welcome}
}

// Subscribe registers an email for the newsletter. The email is lower-cased
// before lookup and storage. A duplicate email yields ErrAlreadySubscribed;
// the existence check is a fast path, the unique index on the storage layer
// is the actual guarantee under concurrent requests.
func (s *Service) Subscribe(ctx context.Context, email, source string) (*domain.Subscription, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if source == "" {
		source = DefaultSource
	}

	_, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		metrics.SubscriptionsTotal.WithLabelValues(metrics.OutcomeDuplicate).Inc()
		return nil, ErrAlreadySubscribed
	}
	if !errors.Is(err, ErrSubscriptionNotFound) {
		metrics.SubscriptionsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, err
	}

	sub := &domain.Subscription{
		Email:  email,
		Source: source,
		Status: domain.SubscriptionStatusActive,
	}

	if err := s.repo.Create(ctx, sub); err != nil {
		if errors.Is(err, ErrAlreadySubscribed) {
			metrics.SubscriptionsTotal.WithLabelValues(metrics.OutcomeDuplicate).Inc()
		} else {
			metrics.SubscriptionsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		}
		return nil, err
	}

	metrics.SubscriptionsTotal.WithLabelValues(metrics.OutcomeCreated).Inc()

	if s.welcome != nil {
		if err := s.welcome.SendWelcome(ctx, sub.Email, sub.Source); err != nil {
			// Subscription already exists; a failed welcome email is not an error
			// the caller needs to see.
			ctxlog.FromContext(ctx).Error("failed to send welcome email",
				"email", sub.Email, "error", err)
		}
	}

	return sub, nil
}
