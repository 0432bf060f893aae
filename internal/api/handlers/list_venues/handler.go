package list_venues

import (
	"net/http"

	"github.com/m04kA/SMC-CanteenService/internal/api/handlers"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result := h.service.ListVenues()

	h.logger.Info("GET /venues - Venues retrieved successfully: count=%d", len(result.Venues))
	handlers.RespondJSON(w, http.StatusOK, result)
}
