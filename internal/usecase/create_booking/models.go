package create_booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/yagera/bazaar-mtuci/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	ItemID    int64     // ID объявления
	RenterID  int64     // ID арендатора
	StartTime time.Time // Начало аренды
	EndTime   time.Time // Конец аренды
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         int64           // ID созданного бронирования
	ItemID     int64           // ID объявления
	RenterID   int64           // ID арендатора
	StartTime  time.Time       // Начало аренды (UTC)
	EndTime    time.Time       // Конец аренды (UTC)
	TotalPrice decimal.Decimal // Рассчитанная стоимость
	Status     string          // Статус бронирования (pending)

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
