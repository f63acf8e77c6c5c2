package create_request

import (
	"errors"
	"net/http"

	"github.com/EvgeniyTomilov/shareit/internal/api/handlers"
	"github.com/EvgeniyTomilov/shareit/internal/api/middleware"
	"github.com/EvgeniyTomilov/shareit/internal/service/requests"
	"github.com/EvgeniyTomilov/shareit/internal/service/requests/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgUserNotFound       = "пользователь не найден"
	msgInvalidInput       = "некорректные данные запроса"
)

// CreateRequestRequest HTTP request model
type CreateRequestRequest struct {
	Description string `json:"description"`
}

type Handler struct {
	service RequestService
	logger  Logger
}

func NewHandler(service RequestService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /requests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем requesterID из контекста (через middleware Auth)
	requesterID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /requests - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateRequestRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /requests - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &models.CreateRequestRequest{
		RequesterID: requesterID,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, requests.ErrUserNotFound):
			h.logger.Warn("POST /requests - User not found: user_id=%d", requesterID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, requests.ErrInvalidInput):
			h.logger.Warn("POST /requests - Invalid input: user_id=%d", requesterID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /requests - Failed to create request: user_id=%d, error=%v", requesterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /requests - Request created successfully: request_id=%d, user_id=%d",
		result.ID, requesterID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
