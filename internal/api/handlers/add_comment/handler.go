package add_comment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/EvgeniyTomilov/shareit/internal/api/handlers"
	"github.com/EvgeniyTomilov/shareit/internal/api/middleware"
	"github.com/EvgeniyTomilov/shareit/internal/service/items"
	"github.com/EvgeniyTomilov/shareit/internal/service/items/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidItemID      = "некорректный ID вещи"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgItemNotFound       = "вещь не найдена"
	msgUserNotFound       = "пользователь не найден"
	msgNoFinishedBooking  = "комментарий доступен только после завершенной аренды"
	msgInvalidInput       = "некорректные данные запроса"
)

// AddCommentRequest HTTP request model
type AddCommentRequest struct {
	Text string `json:"text"`
}

type Handler struct {
	service ItemService
	logger  Logger
}

func NewHandler(service ItemService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /items/{itemId}/comment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем itemId из URL
	vars := mux.Vars(r)
	itemIDStr := vars["itemId"]

	itemID, err := strconv.ParseInt(itemIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /items/{id}/comment - Invalid item ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return
	}

	// Получаем authorID из контекста (через middleware Auth)
	authorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /items/{id}/comment - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req AddCommentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /items/{id}/comment - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.AddComment(r.Context(), &models.AddCommentRequest{
		AuthorID: authorID,
		ItemID:   itemID,
		Text:     req.Text,
	})
	if err != nil {
		switch {
		case errors.Is(err, items.ErrItemNotFound):
			h.logger.Warn("POST /items/{id}/comment - Item not found: item_id=%d", itemID)
			handlers.RespondNotFound(w, msgItemNotFound)

		case errors.Is(err, items.ErrUserNotFound):
			h.logger.Warn("POST /items/{id}/comment - User not found: user_id=%d", authorID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, items.ErrNoFinishedBooking):
			h.logger.Warn("POST /items/{id}/comment - No finished booking: item_id=%d, user_id=%d", itemID, authorID)
			handlers.RespondBadRequest(w, msgNoFinishedBooking)

		case errors.Is(err, items.ErrInvalidInput):
			h.logger.Warn("POST /items/{id}/comment - Invalid input: item_id=%d, user_id=%d", itemID, authorID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /items/{id}/comment - Failed to add comment: item_id=%d, error=%v", itemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /items/{id}/comment - Comment added successfully: comment_id=%d, item_id=%d, user_id=%d",
		result.ID, itemID, authorID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
