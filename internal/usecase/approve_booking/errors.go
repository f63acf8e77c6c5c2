package approve_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено,
	// а также когда решение пытается принять не владелец вещи
	// (отказ в доступе не раскрывает существование бронирования)
	ErrBookingNotFound = errors.New("approve_booking: booking not found")

	// ErrSecondaryApproval возвращается при попытке повторного решения
	// по бронированию, уже покинувшему статус WAITING
	ErrSecondaryApproval = errors.New("approve_booking: secondary approval is prohibited")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("approve_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("approve_booking: internal error")
)
