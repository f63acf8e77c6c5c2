package requests

import "errors"

var (
	// ErrRequestNotFound возвращается, когда запрос вещи не найден
	ErrRequestNotFound = errors.New("item request not found")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("requests service: internal error")
)
