package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/yagera/bazaar-mtuci/internal/domain"
	bookingRepo "github.com/yagera/bazaar-mtuci/internal/infra/storage/booking"
	itemClient "github.com/yagera/bazaar-mtuci/internal/integrations/itemservice"
	"github.com/yagera/bazaar-mtuci/internal/service/bookings/models"
)

// Service сервис для чтения бронирований
type Service struct {
	bookingRepo BookingRepository
	itemClient  ItemServiceClient
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	itemClient ItemServiceClient,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		itemClient:  itemClient,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Проверяет права доступа - бронирование видят только арендатор
// и владелец объявления
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if err := s.checkUserAccess(ctx, booking, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя как арендатора
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	// Конвертируем статус из строки в domain.BookingStatus
	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByRenterID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// GetItemBookings получает активные бронирования объявления
// Публичный список занятости: без данных арендаторов и стоимости
func (s *Service) GetItemBookings(ctx context.Context, itemID int64) (*models.ItemBookingListResponse, error) {
	s.logger.Info("GetItemBookings: fetching active bookings for item=%d", itemID)

	// Убеждаемся, что объявление существует
	if _, err := s.itemClient.GetItem(ctx, itemID); err != nil {
		if errors.Is(err, itemClient.ErrItemNotFound) {
			s.logger.Warn("GetItemBookings: item id=%d not found", itemID)
			return nil, ErrItemNotFound
		}
		s.logger.Error("GetItemBookings: failed to get item id=%d: %v", itemID, err)
		return nil, fmt.Errorf("%w: GetItemBookings - failed to get item: %v", ErrInternal, err)
	}

	bookings, err := s.bookingRepo.GetActiveByItemID(ctx, itemID)
	if err != nil {
		s.logger.Error("GetItemBookings: repository error for item=%d: %v", itemID, err)
		return nil, fmt.Errorf("%w: GetItemBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetItemBookings: successfully fetched %d bookings for item=%d", len(bookings), itemID)
	return models.FromDomainItemBookings(bookings), nil
}

// Вспомогательные методы

// checkUserAccess проверяет, что пользователь имеет доступ к бронированию
// Доступ есть у арендатора и у владельца объявления
func (s *Service) checkUserAccess(ctx context.Context, booking *domain.Booking, userID int64) error {
	// Арендатор видит своё бронирование
	if booking.RenterID == userID {
		return nil
	}

	// Владелец объявления видит бронирования своей вещи
	item, err := s.itemClient.GetItem(ctx, booking.ItemID)
	if err != nil {
		if errors.Is(err, itemClient.ErrItemNotFound) {
			s.logger.Warn("checkUserAccess: item id=%d not found", booking.ItemID)
			return ErrAccessDenied
		}
		s.logger.Error("checkUserAccess: failed to get item id=%d: %v", booking.ItemID, err)
		return fmt.Errorf("%w: checkUserAccess - failed to get item: %v", ErrInternal, err)
	}

	if item.OwnerID == userID {
		return nil
	}

	return ErrAccessDenied
}
