package availability

import "errors"

var (
	// ErrItemNotFound возвращается, когда объявление не найдено
	ErrItemNotFound = errors.New("item not found")

	// ErrAccessDenied возвращается, когда пользователь не владелец объявления
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
