package check_availability

import "errors"

var (
	// ErrItemNotFound возвращается, когда объявление не найдено
	ErrItemNotFound = errors.New("check_availability: item not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_availability: internal error")
)
