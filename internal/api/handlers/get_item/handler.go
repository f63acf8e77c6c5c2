package get_item

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/EvgeniyTomilov/shareit/internal/api/handlers"
	"github.com/EvgeniyTomilov/shareit/internal/api/middleware"
	"github.com/EvgeniyTomilov/shareit/internal/service/items"
)

const (
	msgInvalidItemID = "некорректный ID вещи"
	msgMissingUserID = "отсутствует ID пользователя"
	msgItemNotFound  = "вещь не найдена"
)

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

// Handle GET /items/{itemId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем itemId из URL
	vars := mux.Vars(r)
	itemIDStr := vars["itemId"]

	itemID, err := strconv.ParseInt(itemIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /items/{id} - Invalid item ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /items/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.GetByID(r.Context(), itemID, userID)
	if err != nil {
		switch {
		case errors.Is(err, items.ErrItemNotFound):
			h.logger.Warn("GET /items/{id} - Item not found: item_id=%d", itemID)
			handlers.RespondNotFound(w, msgItemNotFound)

		case errors.Is(err, items.ErrInvalidInput):
			h.logger.Warn("GET /items/{id} - Invalid input: item_id=%d, user_id=%d", itemID, userID)
			handlers.RespondBadRequest(w, msgInvalidItemID)

		default:
			h.logger.Error("GET /items/{id} - Failed to get item: item_id=%d, error=%v", itemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /items/{id} - Item retrieved successfully: item_id=%d, user_id=%d", itemID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
