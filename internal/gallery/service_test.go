package gallery

import (
	"context"
	"testing"

	"github.com/aurabyshenoi/portfolio-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockRepository implements Repository and records the filter it received.
type mockRepository struct {
	paintings  []domain.Painting
	lastFilter Filter
	err        error
}

func (m *mockRepository) ListPaintings(_ context.Context, filter Filter) ([]domain.Painting, error) {
	m.lastFilter = filter
	if m.err != nil {
		return nil, m.err
	}
	out := m.paintings
	if filter.Featured != nil {
		out = nil
		for _, p := range m.paintings {
			if p.Featured == *filter.Featured {
				out = append(out, p)
			}
		}
	}
	if len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func TestListPaintings_DefaultLimit(t *testing.T) {
	repo := &mockRepository{}
	svc := NewService(repo)

	_, err := svc.ListPaintings(context.Background(), Filter{})
	require.NoError(t, err)

	assert.Equal(t, DefaultPaintingsLimit, repo.lastFilter.Limit)
}

func TestListPaintings_ClampsLimit(t *testing.T) {
	repo := &mockRepository{}
	svc := NewService(repo)

	_, err := svc.ListPaintings(context.Background(), Filter{Limit: 500})
	require.NoError(t, err)

	assert.Equal(t, MaxPaintingsLimit, repo.lastFilter.Limit)
}

func TestListPaintings_KeepsSmallLimit(t *testing.T) {
	repo := &mockRepository{
		paintings: make([]domain.Painting, 10),
	}
	svc := NewService(repo)

	paintings, err := svc.ListPaintings(context.Background(), Filter{Limit: 5})
	require.NoError(t, err)

	assert.Equal(t, 5, repo.lastFilter.Limit)
	assert.Len(t, paintings, 5)
}

func TestListPaintings_FeaturedFilter(t *testing.T) {
	repo := &mockRepository{
		paintings: []domain.Painting{
			{ID: "a", Featured: true},
			{ID: "b", Featured: false},
			{ID: "c", Featured: true},
		},
	}
	svc := NewService(repo)

	featured := true
	paintings, err := svc.ListPaintings(context.Background(), Filter{Featured: &featured})
	require.NoError(t, err)

	require.Len(t, paintings, 2)
	for _, p := range paintings {
		assert.True(t, p.Featured)
	}
}
