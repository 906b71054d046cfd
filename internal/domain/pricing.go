package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrNoPricing возвращается, когда у вещи нет ни почасовой, ни дневной цены
// По инвариантам каталога такого быть не должно, но цена никогда не
// умалчивается в ноль
var ErrNoPricing = errors.New("domain: item has no usable pricing")

var (
	secondsPerHour = decimal.NewFromInt(3600)
	hoursPerDay    = decimal.NewFromInt(24)
)

// CalculatePrice вычисляет стоимость аренды за диапазон [start, end)
//
// Если задана дневная цена и длительность не меньше суток, считаем по дням
// пропорционально (25 часов = 25/24 суток, без округления до целых дней).
// Иначе считаем по часам. Вся арифметика на decimal, результат округлён
// до копеек
func CalculatePrice(pricePerHour, pricePerDay *decimal.Decimal, start, end time.Time) (decimal.Decimal, error) {
	seconds := int64(end.Sub(start) / time.Second)
	hours := decimal.NewFromInt(seconds).Div(secondsPerHour)

	if pricePerDay != nil && hours.GreaterThanOrEqual(hoursPerDay) {
		days := hours.Div(hoursPerDay)
		return days.Mul(*pricePerDay).Round(2), nil
	}

	if pricePerHour != nil {
		return hours.Mul(*pricePerHour).Round(2), nil
	}

	return decimal.Decimal{}, ErrNoPricing
}
