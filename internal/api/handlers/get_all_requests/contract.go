package get_all_requests

import (
	"context"

	"github.com/EvgeniyTomilov/shareit/internal/service/requests/models"
)

type RequestService interface {
	ListOthers(ctx context.Context, req *models.ListOthersRequest) ([]*models.RequestResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
