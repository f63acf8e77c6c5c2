package create_booking

import (
	"errors"
	"net/http"

	"github.com/EvgeniyTomilov/shareit/internal/api/handlers"
	"github.com/EvgeniyTomilov/shareit/internal/api/middleware"
	createBooking "github.com/EvgeniyTomilov/shareit/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается RFC3339"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgItemNotFound       = "вещь не найдена"
	msgUserNotFound       = "пользователь не найден"
	msgItemUnavailable    = "вещь недоступна для бронирования"
	msgInvalidTimeRange   = "некорректный период бронирования"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем bookerID из контекста (через middleware Auth)
	bookerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом дат)
	useCaseReq, err := req.ToUseCaseRequest(bookerID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrItemNotFound):
			h.logger.Warn("POST /bookings - Item not found: item_id=%d", req.ItemID)
			handlers.RespondNotFound(w, msgItemNotFound)

		case errors.Is(err, createBooking.ErrUserNotFound):
			h.logger.Warn("POST /bookings - User not found: user_id=%d", bookerID)
			handlers.RespondNotFound(w, msgUserNotFound)

		// Владелец не может бронировать свою вещь, наружу отдаем not found
		case errors.Is(err, createBooking.ErrOwnBooking):
			h.logger.Warn("POST /bookings - Owner can't book own item: user_id=%d, item_id=%d", bookerID, req.ItemID)
			handlers.RespondNotFound(w, msgItemNotFound)

		case errors.Is(err, createBooking.ErrItemUnavailable):
			h.logger.Warn("POST /bookings - Item unavailable: item_id=%d", req.ItemID)
			handlers.RespondBadRequest(w, msgItemUnavailable)

		case errors.Is(err, createBooking.ErrInvalidTimeRange):
			h.logger.Warn("POST /bookings - Invalid time range: user_id=%d, item_id=%d", bookerID, req.ItemID)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, item_id=%d", bookerID, req.ItemID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, item_id=%d, error=%v",
				bookerID, req.ItemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, item_id=%d",
		result.ID, bookerID, req.ItemID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
