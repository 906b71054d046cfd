package check_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/yagera/bazaar-mtuci/internal/api/handlers"
	checkAvailability "github.com/yagera/bazaar-mtuci/internal/usecase/check_availability"
)

const (
	msgInvalidItemID = "некорректный ID объявления"
	msgInvalidTime   = "некорректный формат времени, ожидается RFC 3339"
	msgItemNotFound  = "объявление не найдено"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/items/{itemId}/availability/check?start=...&end=...
// Справочная проверка: результат не резервирует слот
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем itemId из URL
	vars := mux.Vars(r)
	itemID, err := strconv.ParseInt(vars["itemId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /items/{itemId}/availability/check - Invalid item ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return
	}

	// Парсим границы диапазона из query параметров
	startTime, err := time.Parse(time.RFC3339, r.URL.Query().Get("start"))
	if err != nil {
		h.logger.Warn("GET /items/{itemId}/availability/check - Invalid start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	endTime, err := time.Parse(time.RFC3339, r.URL.Query().Get("end"))
	if err != nil {
		h.logger.Warn("GET /items/{itemId}/availability/check - Invalid end time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &checkAvailability.Request{
		ItemID:    itemID,
		StartTime: startTime,
		EndTime:   endTime,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrItemNotFound):
			h.logger.Warn("GET /items/{itemId}/availability/check - Item not found: item_id=%d", itemID)
			handlers.RespondNotFound(w, msgItemNotFound)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /items/{itemId}/availability/check - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTime)

		default:
			h.logger.Error("GET /items/{itemId}/availability/check - Failed to check: item_id=%d, error=%v", itemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /items/{itemId}/availability/check - Checked successfully: item_id=%d, available=%t",
		itemID, result.Available)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
