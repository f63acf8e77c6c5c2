package create_booking

import "errors"

var (
	// ErrItemNotFound возвращается, когда вещь не найдена
	ErrItemNotFound = errors.New("create_booking: item not found")

	// ErrUserNotFound возвращается, когда пользователь-арендатор не найден
	ErrUserNotFound = errors.New("create_booking: user not found")

	// ErrItemUnavailable возвращается, когда вещь недоступна для бронирования
	ErrItemUnavailable = errors.New("create_booking: item is not available for booking")

	// ErrInvalidTimeRange возвращается при некорректном временном диапазоне
	// (начало в прошлом либо окончание не позже начала)
	ErrInvalidTimeRange = errors.New("create_booking: invalid time range")

	// ErrOwnBooking возвращается при попытке владельца забронировать собственную вещь
	// Наружу транслируется как not found (политика скрытия существования)
	ErrOwnBooking = errors.New("create_booking: owner of item can't book it")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
