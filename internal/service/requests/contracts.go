package requests

import (
	"context"
	"time"

	"github.com/EvgeniyTomilov/shareit/internal/domain"
)

// RequestRepository интерфейс репозитория запросов вещей
type RequestRepository interface {
	Create(ctx context.Context, req *domain.ItemRequest) (*domain.ItemRequest, error)
	GetByID(ctx context.Context, id int64) (*domain.ItemRequest, error)
	ListByRequester(ctx context.Context, requesterID int64) ([]*domain.ItemRequest, error)
	ListOthers(ctx context.Context, requesterID int64, page, size int) ([]*domain.ItemRequest, error)
}

// ItemRepository интерфейс репозитория вещей
// Нужен для вложения вещей, созданных в ответ на запрос
type ItemRepository interface {
	ListByRequest(ctx context.Context, requestID int64) ([]*domain.Item, error)
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
