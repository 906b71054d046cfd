package create_booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/yagera/bazaar-mtuci/internal/domain"
)

var (
	// ErrItemNotFound возвращается, когда объявление не найдено
	ErrItemNotFound = errors.New("create_booking: item not found")

	// ErrItemNotBookable возвращается, когда объявление неактивно или не сдаётся в аренду
	ErrItemNotBookable = errors.New("create_booking: item is not bookable")

	// ErrCannotBookOwnItem возвращается при попытке забронировать собственное объявление
	ErrCannotBookOwnItem = errors.New("create_booking: cannot book own item")

	// ErrInvalidTimeRange возвращается, когда конец диапазона не позже начала
	ErrInvalidTimeRange = errors.New("create_booking: end time must be after start time")

	// ErrPastBooking возвращается, когда начало бронирования в прошлом
	ErrPastBooking = errors.New("create_booking: cannot book in the past")

	// ErrSlotTaken возвращается при пересечении с активным бронированием
	ErrSlotTaken = errors.New("create_booking: time slot is already taken")

	// ErrOutsideAvailability возвращается, когда диапазон не покрыт окнами доступности
	ErrOutsideAvailability = errors.New("create_booking: outside availability windows")

	// ErrPricingUnavailable возвращается, когда у объявления нет ни одной цены
	// Защитная ветка: инварианты каталога такого не допускают
	ErrPricingUnavailable = errors.New("create_booking: item has no usable pricing")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// SlotTakenError ошибка пересечения с существующим бронированием
// Несёт границы занятого диапазона для сообщения пользователю
type SlotTakenError struct {
	ConflictStart time.Time
	ConflictEnd   time.Time
}

// Error возвращает сообщение с границами занятого времени
func (e *SlotTakenError) Error() string {
	return fmt.Sprintf("Это время уже занято. Занято с %s до %s",
		e.ConflictStart.Format(domain.TimeFormat), e.ConflictEnd.Format(domain.TimeFormat))
}

// Unwrap привязывает ошибку к ErrSlotTaken для errors.Is
func (e *SlotTakenError) Unwrap() error {
	return ErrSlotTaken
}

// OutsideAvailabilityError ошибка выхода за окна доступности
// Несёт готовое сообщение с датой или границей времени
type OutsideAvailabilityError struct {
	Reason string
}

// Error возвращает сообщение для пользователя
func (e *OutsideAvailabilityError) Error() string {
	return e.Reason
}

// Unwrap привязывает ошибку к ErrOutsideAvailability для errors.Is
func (e *OutsideAvailabilityError) Unwrap() error {
	return ErrOutsideAvailability
}
