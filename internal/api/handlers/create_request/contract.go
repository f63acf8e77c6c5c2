package create_request

import (
	"context"

	"github.com/EvgeniyTomilov/shareit/internal/service/requests/models"
)

type RequestService interface {
	Create(ctx context.Context, req *models.CreateRequestRequest) (*models.RequestResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
