package contact

import (
	"context"
	"fmt"
	"strings"

	"github.com/aurabyshenoi/portfolio-api/internal/domain"
	"github.com/aurabyshenoi/portfolio-api/internal/pkg/ctxlog"
	"github.com/aurabyshenoi/portfolio-api/internal/pkg/metrics"
)

// contactNumberFormat renders sequence values as CNT000001, CNT000002, ...
const contactNumberFormat = "CNT%06d"

// NotificationSender notifies the studio about a new submission.
type NotificationSender interface {
	SendContactNotification(ctx context.Context, c *domain.Contact) error
}

// SubmitParams carries a validated contact form submission.
type SubmitParams struct {
	Name             string
	Email            string
	Phone            string
	Message          string
	ArtworkReference string
}

// Service provides contact submission business logic.
type Service struct {
	repo   Repository
	notify NotificationSender
}

// NewService creates a contact service. notify may be nil.
func NewService(repo Repository, notify NotificationSender) *Service {
	return &Service{repo: repo, notify: notify}
}

// Submit stores a contact form submission. The contact number comes from a
// database sequence, so numbers are unique and monotone even under
// concurrent submissions.
func (s *Service) Submit(ctx context.Context, params SubmitParams) (*domain.Contact, error) {
	seq, err := s.repo.NextSequence(ctx)
	if err != nil {
		metrics.ContactSubmissionsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, fmt.Errorf("allocate contact number: %w", err)
	}

	c := &domain.Contact{
		ContactNumber: fmt.Sprintf(contactNumberFormat, seq),
		Name:          strings.TrimSpace(params.Name),
		Email:         strings.ToLower(strings.TrimSpace(params.Email)),
		Message:       strings.TrimSpace(params.Message),
		Status:        domain.ContactStatusNew,
	}
	if phone := strings.TrimSpace(params.Phone); phone != "" {
		c.Phone = &phone
	}
	if ref := strings.TrimSpace(params.ArtworkReference); ref != "" {
		c.ArtworkReference = &ref
	}

	if err := s.repo.Create(ctx, c); err != nil {
		metrics.ContactSubmissionsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, err
	}

	metrics.ContactSubmissionsTotal.WithLabelValues(metrics.OutcomeCreated).Inc()

	if s.notify != nil {
		if err := s.notify.SendContactNotification(ctx, c); err != nil {
			// The submission is stored; notification failure must not fail the request.
			ctxlog.FromContext(ctx).Error("failed to send contact notification",
				"contact_number", c.ContactNumber, "error", err)
		}
	}

	return c, nil
}

// Count returns the total number of stored submissions.
func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
