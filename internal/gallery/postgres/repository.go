// Package postgres provides the PostgreSQL implementation of the gallery repository.
package postgres

import (
	"context"
	"fmt"

	"github.com/aurabyshenoi/portfolio-api/internal/domain"
	"github.com/aurabyshenoi/portfolio-api/internal/gallery"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository implements gallery.Repository using PostgreSQL.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a PostgreSQL gallery repository.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// ListPaintings retrieves paintings, newest first, id as tiebreaker.
func (r *Repository) ListPaintings(ctx context.Context, filter gallery.Filter) ([]domain.Painting, error) {
	query := `
		SELECT id, title, description, image_url, medium, dimensions, year,
		       price, featured, available, created_at, updated_at, sold_at
		FROM paintings
	`
	args := []interface{}{}

	if filter.Featured != nil {
		query += ` WHERE featured = $1`
		args = append(args, *filter.Featured)
	}

	query += ` ORDER BY created_at DESC, id`
	query += fmt.Sprintf(` LIMIT $%d`, len(args)+1)
	args = append(args, filter.Limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list paintings: %w", err)
	}
	defer rows.Close()

	paintings := make([]domain.Painting, 0)
	for rows.Next() {
		var p domain.Painting
		if err := rows.Scan(
			&p.ID,
			&p.Title,
			&p.Description,
			&p.ImageURL,
			&p.Medium,
			&p.Dimensions,
			&p.Year,
			&p.Price,
			&p.Featured,
			&p.Available,
			&p.CreatedAt,
			&p.UpdatedAt,
			&p.SoldAt,
		); err != nil {
			return nil, fmt.Errorf("scan painting: %w", err)
		}
		paintings = append(paintings, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate paintings: %w", err)
	}

	return paintings, nil
}
