package itemservice

import "github.com/shopspring/decimal"

// PricingMode режим продажи объявления
type PricingMode string

const (
	PricingModeRent PricingMode = "rent" // сдаётся в аренду, участвует в бронировании
	PricingModeSale PricingMode = "sale" // продаётся, бронирование недоступно
)

// Item модель объявления из ItemService
type Item struct {
	ID           int64            `json:"id"`
	OwnerID      int64            `json:"owner_id"`
	Title        string           `json:"title"`
	PricingMode  PricingMode      `json:"pricing_mode"`
	PricePerHour *decimal.Decimal `json:"price_per_hour,omitempty"`
	PricePerDay  *decimal.Decimal `json:"price_per_day,omitempty"`
	SalePrice    *decimal.Decimal `json:"sale_price,omitempty"`
	IsActive     bool             `json:"is_active"`
}

// Bookable возвращает true, если объявление участвует в бронировании
func (i *Item) Bookable() bool {
	return i.IsActive && i.PricingMode == PricingModeRent
}

// ErrorResponse модель ошибки от ItemService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
