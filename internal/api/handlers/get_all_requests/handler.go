package get_all_requests

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/EvgeniyTomilov/shareit/internal/api/handlers"
	"github.com/EvgeniyTomilov/shareit/internal/api/middleware"
	"github.com/EvgeniyTomilov/shareit/internal/service/requests"
	"github.com/EvgeniyTomilov/shareit/internal/service/requests/models"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgUserNotFound  = "пользователь не найден"
	msgInvalidPage   = "некорректные параметры страницы"

	defaultPageSize = 10
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

// Handle GET /requests/all?from={from}&size={size}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /requests/all - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	from := 0
	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		parsed, err := strconv.Atoi(fromStr)
		if err != nil {
			h.logger.Warn("GET /requests/all - Invalid from param: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPage)
			return
		}
		from = parsed
	}

	size := defaultPageSize
	if sizeStr := r.URL.Query().Get("size"); sizeStr != "" {
		parsed, err := strconv.Atoi(sizeStr)
		if err != nil {
			h.logger.Warn("GET /requests/all - Invalid size param: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPage)
			return
		}
		size = parsed
	}

	result, err := h.service.ListOthers(r.Context(), &models.ListOthersRequest{
		UserID: userID,
		From:   from,
		Size:   size,
	})
	if err != nil {
		switch {
		case errors.Is(err, requests.ErrUserNotFound):
			h.logger.Warn("GET /requests/all - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, requests.ErrInvalidInput):
			h.logger.Warn("GET /requests/all - Invalid input: user_id=%d, from=%d, size=%d", userID, from, size)
			handlers.RespondBadRequest(w, msgInvalidPage)

		default:
			h.logger.Error("GET /requests/all - Failed to list requests: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /requests/all - Requests retrieved successfully: user_id=%d, count=%d", userID, len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
