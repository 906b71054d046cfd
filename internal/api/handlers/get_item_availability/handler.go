package get_item_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/yagera/bazaar-mtuci/internal/api/handlers"
	"github.com/yagera/bazaar-mtuci/internal/service/availability"
)

const (
	msgInvalidItemID = "некорректный ID объявления"
	msgItemNotFound  = "объявление не найдено"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/items/{itemId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем itemId из URL
	vars := mux.Vars(r)
	itemID, err := strconv.ParseInt(vars["itemId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /items/{itemId}/availability - Invalid item ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return
	}

	result, err := h.service.List(r.Context(), itemID)
	if err != nil {
		if errors.Is(err, availability.ErrItemNotFound) {
			h.logger.Warn("GET /items/{itemId}/availability - Item not found: item_id=%d", itemID)
			handlers.RespondNotFound(w, msgItemNotFound)
			return
		}
		h.logger.Error("GET /items/{itemId}/availability - Failed to get windows: item_id=%d, error=%v", itemID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /items/{itemId}/availability - Windows retrieved successfully: item_id=%d, count=%d",
		itemID, len(result.Windows))
	handlers.RespondJSON(w, http.StatusOK, result.Windows)
}
