package items

import "errors"

var (
	// ErrItemNotFound возвращается, когда вещь не найдена
	ErrItemNotFound = errors.New("item not found")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrRequestNotFound возвращается, когда указанный запрос вещи не найден
	ErrRequestNotFound = errors.New("item request not found")

	// ErrAccessDenied возвращается, когда вещь пытается изменить не владелец
	ErrAccessDenied = errors.New("access denied")

	// ErrNoFinishedBooking возвращается при попытке оставить комментарий
	// без завершенной аренды этой вещи
	ErrNoFinishedBooking = errors.New("user can't add comment without booking completed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("items service: internal error")
)
