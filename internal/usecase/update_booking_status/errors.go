package update_booking_status

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking_status: booking not found")

	// ErrAccessDenied возвращается, когда пользователь не арендатор и не владелец
	ErrAccessDenied = errors.New("update_booking_status: access denied")

	// ErrForbidden возвращается, когда роль пользователя не даёт права на переход
	ErrForbidden = errors.New("update_booking_status: transition is not allowed for this actor")

	// ErrInvalidStatus возвращается при нераспознанном целевом статусе
	ErrInvalidStatus = errors.New("update_booking_status: invalid status")

	// ErrTerminalStatus возвращается при попытке изменить завершённое бронирование
	ErrTerminalStatus = errors.New("update_booking_status: booking is in a terminal status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking_status: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking_status: internal error")
)
