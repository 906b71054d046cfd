package create_booking

import (
	"errors"
	"net/http"

	"github.com/yagera/bazaar-mtuci/internal/api/handlers"
	"github.com/yagera/bazaar-mtuci/internal/api/middleware"
	createBooking "github.com/yagera/bazaar-mtuci/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается RFC 3339"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgItemNotFound       = "объявление не найдено"
	msgItemNotBookable    = "объявление недоступно для бронирования"
	msgOwnItem            = "нельзя забронировать собственное объявление"
	msgInvalidTimeRange   = "конец аренды должен быть позже начала"
	msgPastBooking        = "нельзя бронировать на прошедшее время"
	msgSlotTaken          = "это время уже занято"
	msgPricingUnavailable = "не удалось рассчитать стоимость аренды"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	renterID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом времени)
	useCaseReq, err := req.ToUseCaseRequest(renterID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken: item_id=%d, renter_id=%d", req.ItemID, renterID)
			handlers.RespondConflict(w, slotTakenMessage(err))

		case errors.Is(err, createBooking.ErrOutsideAvailability):
			h.logger.Warn("POST /bookings - Outside availability: item_id=%d, renter_id=%d", req.ItemID, renterID)
			handlers.RespondConflict(w, err.Error())

		case errors.Is(err, createBooking.ErrItemNotFound):
			h.logger.Warn("POST /bookings - Item not found: item_id=%d", req.ItemID)
			handlers.RespondNotFound(w, msgItemNotFound)

		case errors.Is(err, createBooking.ErrItemNotBookable):
			h.logger.Warn("POST /bookings - Item not bookable: item_id=%d", req.ItemID)
			handlers.RespondBadRequest(w, msgItemNotBookable)

		case errors.Is(err, createBooking.ErrCannotBookOwnItem):
			h.logger.Warn("POST /bookings - Attempt to book own item: item_id=%d, renter_id=%d", req.ItemID, renterID)
			handlers.RespondBadRequest(w, msgOwnItem)

		case errors.Is(err, createBooking.ErrInvalidTimeRange):
			h.logger.Warn("POST /bookings - Invalid time range: item_id=%d, renter_id=%d", req.ItemID, renterID)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, createBooking.ErrPastBooking):
			h.logger.Warn("POST /bookings - Booking in the past: item_id=%d, renter_id=%d", req.ItemID, renterID)
			handlers.RespondBadRequest(w, msgPastBooking)

		case errors.Is(err, createBooking.ErrPricingUnavailable):
			h.logger.Warn("POST /bookings - Pricing unavailable: item_id=%d", req.ItemID)
			handlers.RespondBadRequest(w, msgPricingUnavailable)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: item_id=%d, renter_id=%d, error=%v",
				req.ItemID, renterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, item_id=%d, renter_id=%d",
		result.ID, req.ItemID, renterID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

// slotTakenMessage достаёт из ошибки сообщение с границами занятого времени
func slotTakenMessage(err error) string {
	var slotTaken *createBooking.SlotTakenError
	if errors.As(err, &slotTaken) {
		return slotTaken.Error()
	}
	return msgSlotTaken
}
