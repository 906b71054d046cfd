package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")

	// ErrOverlapConstraint возвращается, когда вставка нарушила ограничение
	// непересечения активных бронирований (bookings_no_overlap_excl).
	// Последняя линия защиты от гонки двух одновременных бронирований
	ErrOverlapConstraint = errors.New("booking.repository: overlapping booking constraint violated")
)
