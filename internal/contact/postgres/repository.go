// Package postgres provides the PostgreSQL implementation of the contact repository.
package postgres

import (
	"context"
	"fmt"

	"github.com/aurabyshenoi/portfolio-api/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository implements contact.Repository using PostgreSQL.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a PostgreSQL contact repository.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// NextSequence returns the next contact sequence value.
func (r *Repository) NextSequence(ctx context.Context) (int64, error) {
	var seq int64
	err := r.db.QueryRow(ctx, `SELECT nextval('contact_number_seq')`).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next contact sequence: %w", err)
	}
	return seq, nil
}

// Create inserts a contact submission.
func (r *Repository) Create(ctx context.Context, c *domain.Contact) error {
	query := `
		INSERT INTO contact_submissions
			(id, contact_number, name, email, phone, message, artwork_reference, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, submitted_at, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		uuid.NewString(),
		c.ContactNumber,
		c.Name,
		c.Email,
		c.Phone,
		c.Message,
		c.ArtworkReference,
		c.Status,
	).Scan(&c.ID, &c.SubmittedAt, &c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create contact submission: %w", err)
	}

	return nil
}

// Count returns the total number of contact submissions.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM contact_submissions`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count contact submissions: %w", err)
	}
	return count, nil
}
