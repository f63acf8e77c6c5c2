package create_booking

import (
	"fmt"
	"time"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookerID <= 0 {
		return fmt.Errorf("%w: bookerID must be positive", ErrInvalidInput)
	}

	if req.ItemID <= 0 {
		return fmt.Errorf("%w: itemID must be positive", ErrInvalidInput)
	}

	if req.Start.IsZero() {
		return fmt.Errorf("%w: start is required", ErrInvalidInput)
	}

	if req.End.IsZero() {
		return fmt.Errorf("%w: end is required", ErrInvalidInput)
	}

	return nil
}

// validateTimeRange проверяет временной диапазон бронирования
// Порядок проверок фиксирован: сначала начало в прошлом, затем окончание.
// Равенство start и end отклоняется
func validateTimeRange(start, end, now time.Time) error {
	if start.Before(now) {
		return fmt.Errorf("%w: start can't be in the past", ErrInvalidTimeRange)
	}

	if !end.After(start) {
		return fmt.Errorf("%w: end must be after start", ErrInvalidTimeRange)
	}

	return nil
}
