package newsletter

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/aurabyshenoi/portfolio-api/internal/pkg/httputil"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// Handler handles HTTP requests for the newsletter module.
type Handler struct {
	service   *Service
	validator *validator.Validate
}

// NewHandler creates a newsletter handler.
func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(),
	}
}

// RegisterRoutes registers newsletter routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/newsletter/subscribe", h.Subscribe)
}

// SubscribeRequest is the request body for POST /newsletter/subscribe.
type SubscribeRequest struct {
	Email  string `json:"email" validate:"required,email"`
	Source string `json:"source" validate:"omitempty,max=100"`
}

// SubscribeResponseData is the data payload of a successful subscription.
type SubscribeResponseData struct {
	Email        string    `json:"email"`
	SubscribedAt time.Time `json:"subscribedAt"`
}

// Subscribe handles POST /newsletter/subscribe.
func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req SubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	req.Source = strings.TrimSpace(req.Source)

	if err := h.validator.Struct(req); err != nil {
		httputil.ValidationError(w, err)
		return
	}

	sub, err := h.service.Subscribe(r.Context(), req.Email, req.Source)
	if err != nil {
		httputil.HandleError(r.Context(), w, err, []httputil.ErrorMapping{
			{Error: ErrAlreadySubscribed, Status: http.StatusConflict,
				Message: "This email is already subscribed to our newsletter"},
		})
		return
	}

	httputil.Success(w, http.StatusCreated, "Successfully subscribed to newsletter!",
		SubscribeResponseData{
			Email:        sub.Email,
			SubscribedAt: sub.SubscribedAt,
		})
}
