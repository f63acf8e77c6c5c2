package add_comment

import (
	"context"

	"github.com/EvgeniyTomilov/shareit/internal/service/items/models"
)

type ItemService interface {
	AddComment(ctx context.Context, req *models.AddCommentRequest) (*models.CommentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
