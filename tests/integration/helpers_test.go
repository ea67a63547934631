//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// resetTables clears mutable state between tests. The contact number
// sequence deliberately keeps counting; tests assert relative order only.
func resetTables(t *testing.T) {
	t.Helper()
	_, err := testDB.Exec(context.Background(),
		`TRUNCATE newsletter_subscriptions, contact_submissions, paintings`)
	require.NoError(t, err)
}

// seedPainting inserts a painting directly and returns its id.
func seedPainting(t *testing.T, title string, featured bool) string {
	t.Helper()

	id := uuid.NewString()
	_, err := testDB.Exec(context.Background(), `
		INSERT INTO paintings (id, title, featured, created_at)
		VALUES ($1, $2, $3, $4)
	`, id, title, featured, time.Now().UTC())
	require.NoError(t, err)

	return id
}

// uniqueEmail returns an email address unused by other tests.
func uniqueEmail(t *testing.T) string {
	t.Helper()
	return uuid.NewString() + "@example.com"
}
