package create_item

import (
	"errors"
	"net/http"

	"github.com/EvgeniyTomilov/shareit/internal/api/handlers"
	"github.com/EvgeniyTomilov/shareit/internal/api/middleware"
	"github.com/EvgeniyTomilov/shareit/internal/service/items"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgMissingAvailable   = "поле available обязательно"
	msgUserNotFound       = "пользователь не найден"
	msgRequestNotFound    = "запрос вещи не найден"
	msgInvalidInput       = "некорректные данные запроса"
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

// Handle POST /items
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем ownerID из контекста (через middleware Auth)
	ownerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /items - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /items - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Available == nil {
		h.logger.Warn("POST /items - Missing available field: user_id=%d", ownerID)
		handlers.RespondBadRequest(w, msgMissingAvailable)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest(ownerID))
	if err != nil {
		switch {
		case errors.Is(err, items.ErrUserNotFound):
			h.logger.Warn("POST /items - User not found: user_id=%d", ownerID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, items.ErrRequestNotFound):
			h.logger.Warn("POST /items - Item request not found: user_id=%d", ownerID)
			handlers.RespondNotFound(w, msgRequestNotFound)

		case errors.Is(err, items.ErrInvalidInput):
			h.logger.Warn("POST /items - Invalid input: user_id=%d", ownerID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /items - Failed to create item: user_id=%d, error=%v", ownerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /items - Item created successfully: item_id=%d, user_id=%d", result.ID, ownerID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
