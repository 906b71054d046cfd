package check_availability

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request модель запроса на проверку доступности диапазона
type Request struct {
	ItemID    int64     // ID объявления
	StartTime time.Time // Начало аренды
	EndTime   time.Time // Конец аренды
}

// Response результат проверки. При Available=false Reason содержит
// готовое сообщение для пользователя, при Available=true TotalPrice
// содержит стоимость будущего бронирования
type Response struct {
	Available  bool             // Свободен ли диапазон
	Reason     string           // Причина недоступности
	TotalPrice *decimal.Decimal // Стоимость при Available=true
}

func unavailable(reason string) *Response {
	return &Response{Available: false, Reason: reason}
}
