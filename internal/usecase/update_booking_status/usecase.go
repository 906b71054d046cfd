package update_booking_status

import (
	"context"
	"errors"
	"fmt"

	"github.com/yagera/bazaar-mtuci/internal/domain"
	bookingRepo "github.com/yagera/bazaar-mtuci/internal/infra/storage/booking"
	itemClient "github.com/yagera/bazaar-mtuci/internal/integrations/itemservice"
	"github.com/yagera/bazaar-mtuci/internal/integrations/notifysink"
)

// UseCase use case для смены статуса бронирования
type UseCase struct {
	bookingRepo BookingRepository
	itemClient  ItemServiceClient
	notifySink  NotificationSink
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	itemClient ItemServiceClient,
	notifySink NotificationSink,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		itemClient:  itemClient,
		notifySink:  notifySink,
		logger:      logger,
	}
}

// Execute выполняет переход бронирования в целевой статус.
// Роль актора (арендатор или владелец) определяется по бронированию и
// объявлению, допустимость перехода - по таблице переходов жизненного цикла.
// Повторная установка текущего статуса считается no-op
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBookingStatus: booking=%d, actor=%d, target=%s",
		req.BookingID, req.ActorID, req.TargetStatus)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBookingStatus: validation failed: %v", err)
		return nil, err
	}

	target, err := domain.ParseStatus(req.TargetStatus)
	if err != nil {
		uc.logger.Warn("UpdateBookingStatus: invalid target status %q", req.TargetStatus)
		return nil, ErrInvalidStatus
	}

	// 2. Получаем бронирование
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("UpdateBookingStatus: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("UpdateBookingStatus: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// 3. Определяем роль актора через объявление
	item, err := uc.itemClient.GetItem(ctx, booking.ItemID)
	if err != nil {
		uc.logger.Error("UpdateBookingStatus: failed to get item id=%d: %v", booking.ItemID, err)
		return nil, fmt.Errorf("%w: failed to get item: %v", ErrInternal, err)
	}

	var role domain.Role
	switch req.ActorID {
	case booking.RenterID:
		role = domain.RoleRenter
	case item.OwnerID:
		role = domain.RoleOwner
	default:
		uc.logger.Warn("UpdateBookingStatus: user id=%d has no access to booking id=%d",
			req.ActorID, booking.ID)
		return nil, ErrAccessDenied
	}

	// 4. Повторная установка того же статуса - no-op
	if booking.Status == target {
		uc.logger.Info("UpdateBookingStatus: booking id=%d already in status %s", booking.ID, target)
		return fromDomainBooking(booking), nil
	}

	// 5. Проверяем переход по таблице жизненного цикла
	effective, err := domain.Transition(booking.Status, role, target)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidStatus):
			uc.logger.Warn("UpdateBookingStatus: invalid target status %s", target)
			return nil, ErrInvalidStatus
		case errors.Is(err, domain.ErrTerminalStatus):
			uc.logger.Warn("UpdateBookingStatus: booking id=%d is terminal (%s)", booking.ID, booking.Status)
			return nil, ErrTerminalStatus
		default:
			uc.logger.Warn("UpdateBookingStatus: transition %s -> %s forbidden for %s",
				booking.Status, target, role)
			return nil, ErrForbidden
		}
	}

	// 6. Сохраняем новый статус
	if err := uc.bookingRepo.UpdateStatus(ctx, booking.ID, effective); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("UpdateBookingStatus: failed to update booking id=%d: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
	}

	booking.Status = effective

	uc.logger.Info("UpdateBookingStatus: booking id=%d moved to %s by %s", booking.ID, effective, role)

	// 7. Уведомляем вторую сторону о фактическом переходе (best-effort)
	if n := uc.buildNotification(booking, item, role, effective); n != nil {
		if err := uc.notifySink.Send(ctx, n); err != nil {
			uc.logger.Error("UpdateBookingStatus: failed to notify about booking id=%d: %v", booking.ID, err)
		}
	}

	return fromDomainBooking(booking), nil
}

// buildNotification подбирает уведомление по эффективному переходу.
// Завершение бронирования уведомлений не порождает
func (uc *UseCase) buildNotification(
	booking *domain.Booking,
	item *itemClient.Item,
	role domain.Role,
	effective domain.BookingStatus,
) *notifysink.Notification {
	switch effective {
	case domain.StatusConfirmed:
		return notifysink.BookingConfirmed(booking.RenterID, booking.ID, item.ID, item.Title)
	case domain.StatusRejected:
		return notifysink.BookingRejected(booking.RenterID, booking.ID, item.ID, item.Title)
	case domain.StatusCancelled:
		if role == domain.RoleOwner {
			return notifysink.BookingCancelledByOwner(booking.RenterID, booking.ID, item.ID, item.Title)
		}
		return notifysink.BookingCancelledByRenter(item.OwnerID, booking.ID, item.ID, item.Title)
	}
	return nil
}
