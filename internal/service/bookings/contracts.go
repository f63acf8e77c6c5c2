package bookings

import (
	"context"
	"time"

	"github.com/EvgeniyTomilov/shareit/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListByBooker(ctx context.Context, bookerID int64, filter domain.BookingsFilter) ([]*domain.Booking, error)
	ListByOwner(ctx context.Context, ownerID int64, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// ItemRepository интерфейс каталога вещей
type ItemRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Item, error)
}

// UserRepository интерфейс реестра пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
