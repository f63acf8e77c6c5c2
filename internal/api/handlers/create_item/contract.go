package create_item

import (
	"context"

	"github.com/EvgeniyTomilov/shareit/internal/service/items/models"
)

type ItemService interface {
	Create(ctx context.Context, req *models.CreateItemRequest) (*models.ItemResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
