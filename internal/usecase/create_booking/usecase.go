package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/yagera/bazaar-mtuci/internal/domain"
	bookingRepo "github.com/yagera/bazaar-mtuci/internal/infra/storage/booking"
	itemClient "github.com/yagera/bazaar-mtuci/internal/integrations/itemservice"
	"github.com/yagera/bazaar-mtuci/internal/integrations/notifysink"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	availRepo    AvailabilityRepository
	itemClient   ItemServiceClient
	notifySink   NotificationSink
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	availRepo AvailabilityRepository,
	itemClient ItemServiceClient,
	notifySink NotificationSink,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		availRepo:    availRepo,
		itemClient:   itemClient,
		notifySink:   notifySink,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверки идут строго по порядку, каждая отсекает запрос при провале.
// Поиск пересечений, проверка календаря и вставка выполняются в одной
// сериализуемой транзакции, чтобы два одновременных запроса на один
// диапазон не прошли оба
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: item=%d, renter=%d, start=%s, end=%s",
		req.ItemID, req.RenterID, req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем объявление
	item, err := uc.itemClient.GetItem(ctx, req.ItemID)
	if err != nil {
		if errors.Is(err, itemClient.ErrItemNotFound) {
			uc.logger.Warn("CreateBooking: item id=%d not found", req.ItemID)
			return nil, ErrItemNotFound
		}
		uc.logger.Error("CreateBooking: failed to get item id=%d: %v", req.ItemID, err)
		return nil, fmt.Errorf("%w: failed to get item: %v", ErrInternal, err)
	}

	// 3. Бронировать можно только активные арендные объявления
	if !item.Bookable() {
		uc.logger.Warn("CreateBooking: item id=%d is not bookable (active=%t, mode=%s)",
			item.ID, item.IsActive, item.PricingMode)
		return nil, ErrItemNotBookable
	}

	// 4. Владелец не может бронировать собственную вещь
	if item.OwnerID == req.RenterID {
		uc.logger.Warn("CreateBooking: user id=%d attempted to book own item id=%d", req.RenterID, item.ID)
		return nil, ErrCannotBookOwnItem
	}

	// 5. Нормализуем время к UTC
	start := req.StartTime.UTC()
	end := req.EndTime.UTC()

	// 6. Конец должен быть строго позже начала
	if !start.Before(end) {
		uc.logger.Warn("CreateBooking: invalid time range: start=%s, end=%s", start, end)
		return nil, ErrInvalidTimeRange
	}

	// 7. Начало не должно быть в прошлом
	now := uc.timeProvider.Now().UTC()
	if start.Before(now) {
		uc.logger.Warn("CreateBooking: start time %s is in the past (now=%s)", start, now)
		return nil, ErrPastBooking
	}

	var result *domain.Booking

	// 8. Проверка пересечений, календаря и вставка в одной транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 8.1. Ищем пересечение с активными бронированиями (с блокировкой FOR UPDATE)
		conflict, err := uc.bookingRepo.FindOverlapping(txCtx, item.ID, start, end, nil)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to find overlapping bookings: %v", err)
			return fmt.Errorf("%w: failed to find overlapping bookings: %v", ErrInternal, err)
		}
		if conflict != nil {
			uc.logger.Warn("CreateBooking: slot taken by booking id=%d (%s - %s)",
				conflict.ID, conflict.StartTime, conflict.EndTime)
			return &SlotTakenError{ConflictStart: conflict.StartTime, ConflictEnd: conflict.EndTime}
		}

		// 8.2. Проверяем окна доступности по календарю
		windows, err := uc.availRepo.GetOverlappingDates(txCtx, item.ID, domain.DateOnly(start), domain.DateOnly(end))
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get availability windows: %v", err)
			return fmt.Errorf("%w: failed to get availability windows: %v", ErrInternal, err)
		}

		if issue := domain.CheckWindows(windows, start, end); issue != nil {
			uc.logger.Warn("CreateBooking: outside availability for item id=%d: %s", item.ID, issue.Message)
			return &OutsideAvailabilityError{Reason: issue.Message}
		}

		// 8.3. Считаем стоимость
		price, err := domain.CalculatePrice(item.PricePerHour, item.PricePerDay, start, end)
		if err != nil {
			uc.logger.Error("CreateBooking: item id=%d has no usable pricing", item.ID)
			return ErrPricingUnavailable
		}

		// 8.4. Создаем бронирование в статусе pending
		booking := &domain.Booking{
			ItemID:     item.ID,
			RenterID:   req.RenterID,
			StartTime:  start,
			EndTime:    end,
			TotalPrice: price,
			Status:     domain.StatusPending,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			// Ограничение в БД сработало раньше нас - другой запрос успел первым
			if errors.Is(err, bookingRepo.ErrOverlapConstraint) {
				uc.logger.Warn("CreateBooking: overlap constraint violated for item id=%d", item.ID)
				return &SlotTakenError{ConflictStart: start, ConflictEnd: end}
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, price=%s",
		result.ID, result.TotalPrice)

	// 9. Уведомляем владельца о новом запросе (best-effort)
	// Ошибка отправки не отменяет уже созданное бронирование
	notification := notifysink.NewBookingRequest(item.OwnerID, result.ID, item.ID, item.Title)
	if err := uc.notifySink.Send(ctx, notification); err != nil {
		uc.logger.Error("CreateBooking: failed to notify owner id=%d about booking id=%d: %v",
			item.OwnerID, result.ID, err)
	}

	return fromDomainBooking(result), nil
}
