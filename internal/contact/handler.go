package contact

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/aurabyshenoi/portfolio-api/internal/pkg/httputil"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// Handler handles HTTP requests for the contact module.
type Handler struct {
	service   *Service
	validator *validator.Validate
}

// NewHandler creates a contact handler.
func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(),
	}
}

// RegisterRoutes registers contact routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/contact", h.Submit)
}

// SubmitRequest is the request body for POST /contact.
// Length constraints apply to the trimmed values.
type SubmitRequest struct {
	Name             string `json:"name" validate:"required,min=2,max=100"`
	Email            string `json:"email" validate:"required,email"`
	Phone            string `json:"phone" validate:"omitempty,max=32"`
	Message          string `json:"message" validate:"required,min=10,max=1000"`
	ArtworkReference string `json:"artworkReference" validate:"omitempty,max=255"`
}

// SubmitResponseData is the data payload of a successful submission.
type SubmitResponseData struct {
	ContactNumber string    `json:"contactNumber"`
	SubmittedAt   time.Time `json:"submittedAt"`
}

// Submit handles POST /contact.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	// Trim before validation so padded input does not sneak past the
	// length bounds.
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Message = strings.TrimSpace(req.Message)
	req.ArtworkReference = strings.TrimSpace(req.ArtworkReference)

	if err := h.validator.Struct(req); err != nil {
		httputil.ValidationError(w, err)
		return
	}

	c, err := h.service.Submit(r.Context(), SubmitParams{
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		Message:          req.Message,
		ArtworkReference: req.ArtworkReference,
	})
	if err != nil {
		httputil.HandleError(r.Context(), w, err, nil)
		return
	}

	httputil.Success(w, http.StatusCreated, "Thank you for contacting us! We'll get back to you soon.",
		SubmitResponseData{
			ContactNumber: c.ContactNumber,
			SubmittedAt:   c.SubmittedAt,
		})
}
