package items

import (
	"context"
	"time"

	"github.com/EvgeniyTomilov/shareit/internal/domain"
)

// ItemRepository интерфейс репозитория вещей
type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) (*domain.Item, error)
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Item, error)
	Search(ctx context.Context, text string) ([]*domain.Item, error)
	Update(ctx context.Context, item *domain.Item) error
	Delete(ctx context.Context, id int64) error
}

// BookingRepository интерфейс репозитория бронирований
// Выборки по вещи нужны для проекции last/next, выборка по арендатору -
// для проверки права комментировать
type BookingRepository interface {
	ListStartedBefore(ctx context.Context, itemID int64, now time.Time) ([]*domain.Booking, error)
	ListStartingAfter(ctx context.Context, itemID int64, now time.Time) ([]*domain.Booking, error)
	ListEndedByBooker(ctx context.Context, bookerID int64, now time.Time) ([]*domain.Booking, error)
}

// CommentRepository интерфейс репозитория комментариев
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	ListByItem(ctx context.Context, itemID int64) ([]*domain.Comment, error)
}

// UserRepository интерфейс реестра пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// RequestRepository интерфейс репозитория запросов вещей
type RequestRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ItemRequest, error)
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
