package contact

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(repo Repository) *chi.Mux {
	handler := NewHandler(NewService(repo, nil))
	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func postContact(t *testing.T, router http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func contactBody(name, message string) string {
	b, _ := json.Marshal(map[string]string{
		"name":    name,
		"email":   "alice@example.com",
		"message": message,
	})
	return string(b)
}

func TestSubmitHandler_Success(t *testing.T) {
	router := newTestRouter(&mockRepository{})

	rec := postContact(t, router, `{
		"name": "Alice Smith",
		"email": "alice@example.com",
		"phone": "+1 555 0100",
		"message": "I would like to ask about a painting.",
		"artworkReference": "sunset-over-hills"
	}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Data    struct {
			ContactNumber string `json:"contactNumber"`
			SubmittedAt   string `json:"submittedAt"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Regexp(t, contactNumberRe, resp.Data.ContactNumber)
}

func TestSubmitHandler_NameBoundaries(t *testing.T) {
	message := "I would like to ask about a painting."

	tests := []struct {
		name       string
		nameField  string
		wantStatus int
	}{
		{"one char rejected", "A", http.StatusBadRequest},
		{"two chars accepted", "Al", http.StatusCreated},
		{"hundred chars accepted", strings.Repeat("a", 100), http.StatusCreated},
		{"over hundred rejected", strings.Repeat("a", 101), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&mockRepository{})
			rec := postContact(t, router, contactBody(tt.nameField, message))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestSubmitHandler_MessageBoundaries(t *testing.T) {
	tests := []struct {
		name       string
		message    string
		wantStatus int
	}{
		{"nine chars rejected", strings.Repeat("m", 9), http.StatusBadRequest},
		{"ten chars accepted", strings.Repeat("m", 10), http.StatusCreated},
		{"thousand chars accepted", strings.Repeat("m", 1000), http.StatusCreated},
		{"over thousand rejected", strings.Repeat("m", 1001), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&mockRepository{})
			rec := postContact(t, router, contactBody("Alice Smith", tt.message))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestSubmitHandler_PaddedNameRejected(t *testing.T) {
	// One real character padded with spaces must not pass the min length.
	router := newTestRouter(&mockRepository{})

	rec := postContact(t, router, contactBody("  A  ", "I would like to ask about a painting."))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitHandler_ValidationErrorDetails(t *testing.T) {
	router := newTestRouter(&mockRepository{})

	rec := postContact(t, router, contactBody("A", "short"))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Errors  []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.False(t, resp.Success)
	require.Len(t, resp.Errors, 2)
}

func TestSubmitHandler_StorageError(t *testing.T) {
	router := newTestRouter(&mockRepository{seqErr: fmt.Errorf("connection refused")})

	rec := postContact(t, router, contactBody("Alice Smith", "I would like to ask about a painting."))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// The underlying error must not leak to the client.
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestSubmitHandler_InvalidJSON(t *testing.T) {
	router := newTestRouter(&mockRepository{})

	rec := postContact(t, router, `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
