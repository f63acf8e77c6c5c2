package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	// или недоступно для просмотра вызывающему пользователю
	ErrBookingNotFound = errors.New("booking not found")

	// ErrUserNotFound возвращается, когда вызывающий пользователь не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrNoItems возвращается, когда owner-выборку запрашивает пользователь
	// без единой вещи
	ErrNoItems = errors.New("items of user is not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings service: internal error")
)
