//go:build integration

package integration

import (
	"context"
	"net/http"
	"testing"

	"github.com/aurabyshenoi/portfolio-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type subscribeResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		Email        string `json:"email"`
		SubscribedAt string `json:"subscribedAt"`
	} `json:"data"`
}

func TestNewsletterSubscribe(t *testing.T) {
	resetTables(t)
	client := newTestClient(t)

	resp, err := client.POST("/api/newsletter/subscribe", map[string]string{
		"email": "Reader@Example.COM",
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body subscribeResponse
	testutil.DecodeJSON(t, resp, &body)

	assert.True(t, body.Success)
	assert.Equal(t, "reader@example.com", body.Data.Email)
	assert.NotEmpty(t, body.Data.SubscribedAt)

	// Stored lower-cased with default source.
	var source, status string
	err = testDB.QueryRow(context.Background(),
		`SELECT source, status FROM newsletter_subscriptions WHERE email = 'reader@example.com'`,
	).Scan(&source, &status)
	require.NoError(t, err)
	assert.Equal(t, "homepage", source)
	assert.Equal(t, "active", status)
}

func TestNewsletterSubscribe_DuplicateConflict(t *testing.T) {
	resetTables(t)
	client := newTestClient(t)
	email := uniqueEmail(t)

	resp, err := client.POST("/api/newsletter/subscribe", map[string]string{"email": email})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp, err = client.POST("/api/newsletter/subscribe", map[string]string{"email": email})
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var body subscribeResponse
	testutil.DecodeJSON(t, resp, &body)
	assert.False(t, body.Success)
}

func TestNewsletterSubscribe_CaseInsensitiveDuplicate(t *testing.T) {
	resetTables(t)
	client := newTestClient(t)

	resp, err := client.POST("/api/newsletter/subscribe", map[string]string{"email": "dup@example.com"})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp, err = client.POST("/api/newsletter/subscribe", map[string]string{"email": "DUP@Example.com"})
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestNewsletterSubscribe_CustomSource(t *testing.T) {
	resetTables(t)
	client := newTestClient(t)
	email := uniqueEmail(t)

	resp, err := client.POST("/api/newsletter/subscribe", map[string]string{
		"email":  email,
		"source": "exhibition",
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	var source string
	err = testDB.QueryRow(context.Background(),
		`SELECT source FROM newsletter_subscriptions WHERE email = $1`, email,
	).Scan(&source)
	require.NoError(t, err)
	assert.Equal(t, "exhibition", source)
}

func TestNewsletterSubscribe_InvalidEmail(t *testing.T) {
	resetTables(t)
	client := newTestClient(t)

	resp, err := client.POST("/api/newsletter/subscribe", map[string]string{"email": "not-an-email"})
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
