package delete_item

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
	msgForbidden     = "удалять вещь может только владелец"
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

// Handle DELETE /items/{itemId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем itemId из URL
	vars := mux.Vars(r)
	itemIDStr := vars["itemId"]

	itemID, err := strconv.ParseInt(itemIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /items/{id} - Invalid item ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return
	}

	// Получаем ownerID из контекста (через middleware Auth)
	ownerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /items/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Delete(r.Context(), ownerID, itemID); err != nil {
		switch {
		case errors.Is(err, items.ErrItemNotFound):
			h.logger.Warn("DELETE /items/{id} - Item not found: item_id=%d", itemID)
			handlers.RespondNotFound(w, msgItemNotFound)

		case errors.Is(err, items.ErrAccessDenied):
			h.logger.Warn("DELETE /items/{id} - Access denied: item_id=%d, user_id=%d", itemID, ownerID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /items/{id} - Failed to delete item: item_id=%d, error=%v", itemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /items/{id} - Item deleted successfully: item_id=%d, user_id=%d", itemID, ownerID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
