package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/yagera/bazaar-mtuci/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"` // Фильтр по статусу (опционально)
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID         int64           `json:"id"`
	ItemID     int64           `json:"itemId"`
	RenterID   int64           `json:"renterId"`
	StartTime  time.Time       `json:"startTime"` // UTC
	EndTime    time.Time       `json:"endTime"`   // UTC
	TotalPrice decimal.Decimal `json:"totalPrice"`
	Status     string          `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// ItemBookingResponse публичная запись занятости объявления
// Данные арендатора и стоимость намеренно не раскрываются
type ItemBookingResponse struct {
	ID        int64     `json:"id"`
	StartTime time.Time `json:"startTime"` // UTC
	EndTime   time.Time `json:"endTime"`   // UTC
	Status    string    `json:"status"`
}

// ItemBookingListResponse ответ со списком занятых диапазонов объявления
type ItemBookingListResponse struct {
	Bookings []ItemBookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:         b.ID,
		ItemID:     b.ItemID,
		RenterID:   b.RenterID,
		StartTime:  b.StartTime,
		EndTime:    b.EndTime,
		TotalPrice: b.TotalPrice,
		Status:     string(b.Status),
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// FromDomainItemBookings конвертирует список domain моделей в публичные DTO
func FromDomainItemBookings(bookings []*domain.Booking) *ItemBookingListResponse {
	resp := &ItemBookingListResponse{
		Bookings: make([]ItemBookingResponse, 0, len(bookings)),
	}

	for _, b := range bookings {
		if b == nil {
			continue
		}
		resp.Bookings = append(resp.Bookings, ItemBookingResponse{
			ID:        b.ID,
			StartTime: b.StartTime,
			EndTime:   b.EndTime,
			Status:    string(b.Status),
		})
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s, err := domain.ParseStatus(status)
	if err != nil {
		return "", ErrInvalidStatus
	}
	return s, nil
}
