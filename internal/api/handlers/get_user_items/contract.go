package get_user_items

import (
	"context"

	"github.com/EvgeniyTomilov/shareit/internal/service/items/models"
)

type ItemService interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]*models.ItemResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
