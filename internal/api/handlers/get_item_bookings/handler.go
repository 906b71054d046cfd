package get_item_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/yagera/bazaar-mtuci/internal/api/handlers"
	"github.com/yagera/bazaar-mtuci/internal/service/bookings"
)

const (
	msgInvalidItemID = "некорректный ID объявления"
	msgItemNotFound  = "объявление не найдено"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/items/{itemId}/bookings
// Публичный список занятости объявления: активные бронирования
// без данных арендаторов
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем itemId из URL
	vars := mux.Vars(r)
	itemID, err := strconv.ParseInt(vars["itemId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /items/{itemId}/bookings - Invalid item ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return
	}

	result, err := h.service.GetItemBookings(r.Context(), itemID)
	if err != nil {
		if errors.Is(err, bookings.ErrItemNotFound) {
			h.logger.Warn("GET /items/{itemId}/bookings - Item not found: item_id=%d", itemID)
			handlers.RespondNotFound(w, msgItemNotFound)
			return
		}
		h.logger.Error("GET /items/{itemId}/bookings - Failed to get bookings: item_id=%d, error=%v", itemID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /items/{itemId}/bookings - Bookings retrieved successfully: item_id=%d, count=%d",
		itemID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result.Bookings)
}
