package set_item_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/yagera/bazaar-mtuci/internal/api/handlers"
	"github.com/yagera/bazaar-mtuci/internal/api/middleware"
	"github.com/yagera/bazaar-mtuci/internal/service/availability"
)

const (
	msgInvalidItemID      = "некорректный ID объявления"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgItemNotFound       = "объявление не найдено"
	msgForbidden          = "доступ запрещен"
	msgInvalidWindows     = "некорректные окна доступности"
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

// Handle PUT /api/v1/items/{itemId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем itemId из URL
	vars := mux.Vars(r)
	itemID, err := strconv.ParseInt(vars["itemId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /items/{itemId}/availability - Invalid item ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /items/{itemId}/availability - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req SetAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /items/{itemId}/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Replace(r.Context(), req.ToServiceRequest(itemID, userID))
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrItemNotFound):
			h.logger.Warn("PUT /items/{itemId}/availability - Item not found: item_id=%d", itemID)
			handlers.RespondNotFound(w, msgItemNotFound)

		case errors.Is(err, availability.ErrAccessDenied):
			h.logger.Warn("PUT /items/{itemId}/availability - Access denied: item_id=%d, user_id=%d", itemID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("PUT /items/{itemId}/availability - Invalid windows: item_id=%d, error=%v", itemID, err)
			handlers.RespondBadRequest(w, msgInvalidWindows)

		default:
			h.logger.Error("PUT /items/{itemId}/availability - Failed to replace windows: item_id=%d, error=%v", itemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /items/{itemId}/availability - Windows replaced successfully: item_id=%d, count=%d",
		itemID, len(result.Windows))
	handlers.RespondJSON(w, http.StatusOK, result.Windows)
}
