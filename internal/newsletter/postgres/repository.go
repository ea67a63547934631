// Package postgres provides the PostgreSQL implementation of the newsletter repository.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/aurabyshenoi/portfolio-api/internal/domain"
	"github.com/aurabyshenoi/portfolio-api/internal/newsletter"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolation is the SQLSTATE for unique constraint violations.
const uniqueViolation = "23505"

// Repository implements newsletter.Repository using PostgreSQL.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a PostgreSQL newsletter repository.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// FindByEmail retrieves a subscription by its lower-cased email.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.Subscription, error) {
	query := `
		SELECT id, email, source, status, subscribed_at, created_at, updated_at
		FROM newsletter_subscriptions
		WHERE email = lower($1)
	`
	var sub domain.Subscription
	err := r.db.QueryRow(ctx, query, email).Scan(
		&sub.ID,
		&sub.Email,
		&sub.Source,
		&sub.Status,
		&sub.SubscribedAt,
		&sub.CreatedAt,
		&sub.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, newsletter.ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("find subscription by email: %w", err)
	}

	return &sub, nil
}

// Create inserts a subscription. The unique index on email makes concurrent
// duplicate subscribes surface as ErrAlreadySubscribed rather than a second row.
func (r *Repository) Create(ctx context.Context, sub *domain.Subscription) error {
	query := `
		INSERT INTO newsletter_subscriptions (id, email, source, status)
		VALUES ($1, lower($2), $3, $4)
		RETURNING id, email, subscribed_at, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		uuid.NewString(),
		sub.Email,
		sub.Source,
		sub.Status,
	).Scan(&sub.ID, &sub.Email, &sub.SubscribedAt, &sub.CreatedAt, &sub.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return newsletter.ErrAlreadySubscribed
		}
		return fmt.Errorf("create subscription: %w", err)
	}

	return nil
}
