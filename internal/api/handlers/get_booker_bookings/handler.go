package get_booker_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/EvgeniyTomilov/shareit/internal/api/handlers"
	"github.com/EvgeniyTomilov/shareit/internal/api/middleware"
	"github.com/EvgeniyTomilov/shareit/internal/domain"
	"github.com/EvgeniyTomilov/shareit/internal/service/bookings"
	"github.com/EvgeniyTomilov/shareit/internal/service/bookings/models"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgUserNotFound  = "пользователь не найден"
	msgInvalidPage   = "некорректные параметры страницы"

	defaultPageSize = 10
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /bookings?state={state}&from={from}&size={size}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	req, err := parseListRequest(r, userID)
	if err != nil {
		h.logger.Warn("GET /bookings - Invalid page params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPage)
		return
	}

	result, err := h.service.ListForBooker(r.Context(), req)
	if err != nil {
		switch {
		// Текст ошибки о неизвестном состоянии отдаем клиенту как есть
		case errors.Is(err, domain.ErrUnsupportedState):
			h.logger.Warn("GET /bookings - Unsupported state: user_id=%d, state=%q", userID, req.State)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, bookings.ErrUserNotFound):
			h.logger.Warn("GET /bookings - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid input: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgInvalidPage)

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved successfully: user_id=%d, count=%d",
		userID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result.Bookings)
}

// parseListRequest разбирает query параметры выборки
// state по умолчанию ALL, from по умолчанию 0, size по умолчанию 10
func parseListRequest(r *http.Request, userID int64) (*models.ListBookingsRequest, error) {
	state := r.URL.Query().Get("state")
	if state == "" {
		state = string(domain.StateAll)
	}

	from := 0
	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		parsed, err := strconv.Atoi(fromStr)
		if err != nil {
			return nil, err
		}
		from = parsed
	}

	size := defaultPageSize
	if sizeStr := r.URL.Query().Get("size"); sizeStr != "" {
		parsed, err := strconv.Atoi(sizeStr)
		if err != nil {
			return nil, err
		}
		size = parsed
	}

	return &models.ListBookingsRequest{
		UserID: userID,
		State:  state,
		From:   from,
		Size:   size,
	}, nil
}
