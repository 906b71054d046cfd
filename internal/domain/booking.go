package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusRejected  BookingStatus = "rejected"
	StatusCompleted BookingStatus = "completed"
)

var (
	// ErrInvalidStatus возвращается, когда целевой статус не является допустимым значением
	ErrInvalidStatus = errors.New("domain: invalid booking status")

	// ErrForbiddenTransition возвращается, когда у актора нет прав на переход
	ErrForbiddenTransition = errors.New("domain: actor is not allowed to perform this transition")

	// ErrTerminalStatus возвращается при попытке изменить бронирование в терминальном статусе
	ErrTerminalStatus = errors.New("domain: booking is in a terminal status")
)

// Role роль актора по отношению к бронированию
type Role string

const (
	RoleRenter Role = "renter" // арендатор, создавший бронирование
	RoleOwner  Role = "owner"  // владелец вещи
)

// Valid возвращает true для известного статуса
func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusRejected, StatusCompleted:
		return true
	}
	return false
}

// IsTerminal возвращает true для статуса, из которого нет переходов
func (s BookingStatus) IsTerminal() bool {
	return s == StatusCancelled || s == StatusRejected || s == StatusCompleted
}

// Booking represents a rental booking in the marketplace
type Booking struct {
	ID         int64
	ItemID     int64
	RenterID   int64
	StartTime  time.Time // UTC
	EndTime    time.Time // UTC
	TotalPrice decimal.Decimal
	Status     BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking blocks its time range
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// Overlaps проверяет пересечение с диапазоном [start, end)
// Интервалы, граничащие точно конец-в-начало, пересечением не считаются
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.StartTime.Before(end) && b.EndTime.After(start)
}

// Transition валидирует переход статуса по таблице переходов и возвращает
// эффективный новый статус. Отмена pending-бронирования владельцем
// интерпретируется как отклонение (rejected).
//
// Таблица переходов:
//
//	pending   -> confirmed  (владелец)
//	pending   -> rejected   (владелец; также через cancelled от владельца)
//	pending   -> cancelled  (арендатор)
//	confirmed -> cancelled  (владелец или арендатор)
//	confirmed -> completed  (владелец, ручное завершение)
//	cancelled / rejected / completed -> терминальные, переходов нет
func Transition(current BookingStatus, role Role, target BookingStatus) (BookingStatus, error) {
	if !target.Valid() || target == StatusPending {
		return "", ErrInvalidStatus
	}

	if current.IsTerminal() {
		return "", ErrTerminalStatus
	}

	switch current {
	case StatusPending:
		switch target {
		case StatusConfirmed, StatusRejected:
			if role != RoleOwner {
				return "", ErrForbiddenTransition
			}
			return target, nil
		case StatusCancelled:
			// Отмена владельцем до подтверждения фиксируется как отклонение
			if role == RoleOwner {
				return StatusRejected, nil
			}
			return StatusCancelled, nil
		}

	case StatusConfirmed:
		switch target {
		case StatusCancelled:
			return StatusCancelled, nil
		case StatusCompleted:
			if role != RoleOwner {
				return "", ErrForbiddenTransition
			}
			return StatusCompleted, nil
		}
	}

	return "", ErrForbiddenTransition
}

// ParseStatus конвертирует строку в BookingStatus с валидацией
func ParseStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	if !status.Valid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
