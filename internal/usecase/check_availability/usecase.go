package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/yagera/bazaar-mtuci/internal/domain"
	itemClient "github.com/yagera/bazaar-mtuci/internal/integrations/itemservice"
)

// Сообщения о причинах недоступности
const (
	reasonNotBookable  = "Объявление недоступно для бронирования"
	reasonInvalidRange = "Конец аренды должен быть позже начала"
	reasonPastBooking  = "Нельзя бронировать на прошедшее время"
	reasonSlotTaken    = "Это время уже занято. Занято с %s до %s"
	reasonNoPricing    = "Не удалось рассчитать стоимость аренды"
)

// UseCase use case для проверки доступности диапазона без бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	availRepo    AvailabilityRepository
	itemClient   ItemServiceClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	availRepo AvailabilityRepository,
	itemClient ItemServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		availRepo:    availRepo,
		itemClient:   itemClient,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute проверяет диапазон теми же правилами, что и создание
// бронирования, но ничего не записывает. Результат носит справочный
// характер: между проверкой и бронированием слот может занять другой
// пользователь
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: item=%d, start=%s, end=%s",
		req.ItemID, req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем объявление
	item, err := uc.itemClient.GetItem(ctx, req.ItemID)
	if err != nil {
		if errors.Is(err, itemClient.ErrItemNotFound) {
			uc.logger.Warn("CheckAvailability: item id=%d not found", req.ItemID)
			return nil, ErrItemNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get item id=%d: %v", req.ItemID, err)
		return nil, fmt.Errorf("%w: failed to get item: %v", ErrInternal, err)
	}

	if !item.Bookable() {
		return unavailable(reasonNotBookable), nil
	}

	// 3. Проверяем сам диапазон
	start := req.StartTime.UTC()
	end := req.EndTime.UTC()

	if !start.Before(end) {
		return unavailable(reasonInvalidRange), nil
	}

	if start.Before(uc.timeProvider.Now().UTC()) {
		return unavailable(reasonPastBooking), nil
	}

	// 4. Ищем пересечение с активными бронированиями
	conflict, err := uc.bookingRepo.FindOverlapping(ctx, item.ID, start, end, nil)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to find overlapping bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to find overlapping bookings: %v", ErrInternal, err)
	}
	if conflict != nil {
		return unavailable(fmt.Sprintf(reasonSlotTaken,
			conflict.StartTime.Format(domain.TimeFormat),
			conflict.EndTime.Format(domain.TimeFormat))), nil
	}

	// 5. Проверяем окна доступности по календарю
	windows, err := uc.availRepo.GetOverlappingDates(ctx, item.ID, domain.DateOnly(start), domain.DateOnly(end))
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get availability windows: %v", err)
		return nil, fmt.Errorf("%w: failed to get availability windows: %v", ErrInternal, err)
	}

	if issue := domain.CheckWindows(windows, start, end); issue != nil {
		return unavailable(issue.Message), nil
	}

	// 6. Считаем стоимость будущего бронирования
	price, err := domain.CalculatePrice(item.PricePerHour, item.PricePerDay, start, end)
	if err != nil {
		uc.logger.Error("CheckAvailability: item id=%d has no usable pricing", item.ID)
		return unavailable(reasonNoPricing), nil
	}

	return &Response{Available: true, TotalPrice: &price}, nil
}
