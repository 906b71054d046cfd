package update_booking_status

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/yagera/bazaar-mtuci/internal/domain"
)

// Request модель запроса на смену статуса бронирования
type Request struct {
	BookingID    int64  // ID бронирования
	ActorID      int64  // ID пользователя, выполняющего действие
	TargetStatus string // Целевой статус
}

// Response модель ответа с обновленным бронированием
type Response struct {
	ID         int64           // ID бронирования
	ItemID     int64           // ID объявления
	RenterID   int64           // ID арендатора
	StartTime  time.Time       // Начало аренды (UTC)
	EndTime    time.Time       // Конец аренды (UTC)
	TotalPrice decimal.Decimal // Стоимость
	Status     string          // Новый статус

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}

// fromDomainBooking конвертирует domain модель в response
func fromDomainBooking(b *domain.Booking) *Response {
	return &Response{
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
