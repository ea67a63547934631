package gallery

import (
	"net/http"
	"strconv"

	"github.com/aurabyshenoi/portfolio-api/internal/pkg/httputil"
	"github.com/go-chi/chi/v5"
)

// Handler handles HTTP requests for the gallery module.
type Handler struct {
	service *Service
}

// NewHandler creates a gallery handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers gallery routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/paintings", h.ListPaintings)
}

// ListPaintings handles GET /paintings.
// Query parameters: featured (boolean), limit (integer).
func (h *Handler) ListPaintings(w http.ResponseWriter, r *http.Request) {
	filter := Filter{}

	if v := r.URL.Query().Get("featured"); v != "" {
		featured, err := strconv.ParseBool(v)
		if err != nil {
			httputil.Error(w, http.StatusBadRequest, "invalid featured parameter")
			return
		}
		filter.Featured = &featured
	}

	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			httputil.Error(w, http.StatusBadRequest, "invalid limit parameter")
			return
		}
		filter.Limit = limit
	}

	paintings, err := h.service.ListPaintings(r.Context(), filter)
	if err != nil {
		httputil.HandleError(r.Context(), w, err, nil)
		return
	}

	httputil.Success(w, http.StatusOK, "", paintings)
}
