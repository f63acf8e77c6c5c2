package domain

import "errors"

// ErrUnsupportedState возвращается при неизвестном значении темпорального состояния
var ErrUnsupportedState = errors.New("Unknown state: UNSUPPORTED_STATUS")

// TemporalState is a query-time classification of bookings relative to "now".
// It is a resolver input, not a persisted booking attribute.
type TemporalState string

const (
	StateAll      TemporalState = "ALL"
	StateCurrent  TemporalState = "CURRENT"
	StatePast     TemporalState = "PAST"
	StateFuture   TemporalState = "FUTURE"
	StateWaiting  TemporalState = "WAITING"
	StateRejected TemporalState = "REJECTED"
)

// ParseTemporalState валидирует строковый токен состояния (case-sensitive)
// Пустая строка трактуется как ALL, как в исходном контракте API
func ParseTemporalState(s string) (TemporalState, error) {
	if s == "" {
		return StateAll, nil
	}

	switch TemporalState(s) {
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return TemporalState(s), nil
	default:
		return "", ErrUnsupportedState
	}
}

// PageFromOffset переводит offset-контракт (from, size) в номер страницы.
// Сохранено поведение источника: from, не кратный size, усекается до
// содержащей его страницы (from=5, size=10 -> страница 0)
func PageFromOffset(from, size int) int {
	if from > 0 && size > 0 {
		return from / size
	}
	return 0
}
