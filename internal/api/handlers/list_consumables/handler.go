package list_consumables

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CanteenService/internal/api/handlers"
	"github.com/m04kA/SMC-CanteenService/internal/service/catalog"
)

const (
	msgInvalidType = "некорректный тип позиции, ожидается dish, drink или dessert"
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

// Handle GET /api/v1/consumables
// Query params: type (опционально, dish | drink | dessert)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	kind := r.URL.Query().Get("type")

	result, err := h.service.ListConsumables(kind)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("GET /consumables - Invalid type: %q", kind)
			handlers.RespondBadRequest(w, msgInvalidType)

		default:
			h.logger.Error("GET /consumables - Failed to list consumables: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /consumables - Consumables retrieved successfully: type=%q, count=%d",
		kind, len(result.Consumables))
	handlers.RespondJSON(w, http.StatusOK, result)
}
