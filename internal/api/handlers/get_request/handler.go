package get_request

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/EvgeniyTomilov/shareit/internal/api/handlers"
	"github.com/EvgeniyTomilov/shareit/internal/api/middleware"
	"github.com/EvgeniyTomilov/shareit/internal/service/requests"
)

const (
	msgInvalidRequestID = "некорректный ID запроса"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgRequestNotFound  = "запрос вещи не найден"
	msgUserNotFound     = "пользователь не найден"
)

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

// Handle GET /requests/{requestId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем requestId из URL
	vars := mux.Vars(r)
	requestIDStr := vars["requestId"]

	requestID, err := strconv.ParseInt(requestIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /requests/{id} - Invalid request ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /requests/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.GetByID(r.Context(), requestID, userID)
	if err != nil {
		switch {
		case errors.Is(err, requests.ErrRequestNotFound):
			h.logger.Warn("GET /requests/{id} - Request not found: request_id=%d", requestID)
			handlers.RespondNotFound(w, msgRequestNotFound)

		case errors.Is(err, requests.ErrUserNotFound):
			h.logger.Warn("GET /requests/{id} - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, requests.ErrInvalidInput):
			h.logger.Warn("GET /requests/{id} - Invalid input: request_id=%d", requestID)
			handlers.RespondBadRequest(w, msgInvalidRequestID)

		default:
			h.logger.Error("GET /requests/{id} - Failed to get request: request_id=%d, error=%v", requestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /requests/{id} - Request retrieved successfully: request_id=%d, user_id=%d",
		requestID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
