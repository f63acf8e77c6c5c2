package approve_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/EvgeniyTomilov/shareit/internal/api/handlers"
	"github.com/EvgeniyTomilov/shareit/internal/api/middleware"
	approveBooking "github.com/EvgeniyTomilov/shareit/internal/usecase/approve_booking"
)

const (
	msgInvalidBookingID  = "некорректный ID бронирования"
	msgInvalidApproved   = "параметр approved должен быть true или false"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgNotFound          = "бронирование не найдено"
	msgSecondaryApproval = "решение по бронированию уже принято"
	msgInvalidInput      = "некорректные данные запроса"
)

type Handler struct {
	useCase ApproveBookingUseCase
	logger  Logger
}

func NewHandler(useCase ApproveBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /bookings/{bookingId}?approved=true|false
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем bookingId из URL
	vars := mux.Vars(r)
	bookingIDStr := vars["bookingId"]

	bookingID, err := strconv.ParseInt(bookingIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	approved, err := strconv.ParseBool(r.URL.Query().Get("approved"))
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id} - Invalid approved param: %v", err)
		handlers.RespondBadRequest(w, msgInvalidApproved)
		return
	}

	// Получаем ownerID из контекста (через middleware Auth)
	ownerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &approveBooking.Request{
		OwnerID:   ownerID,
		BookingID: bookingID,
		Approved:  approved,
	})
	if err != nil {
		switch {
		case errors.Is(err, approveBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id} - Booking not found: booking_id=%d, user_id=%d", bookingID, ownerID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, approveBooking.ErrSecondaryApproval):
			h.logger.Warn("PATCH /bookings/{id} - Secondary approval: booking_id=%d, user_id=%d", bookingID, ownerID)
			handlers.RespondBadRequest(w, msgSecondaryApproval)

		case errors.Is(err, approveBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id} - Invalid input: booking_id=%d, user_id=%d", bookingID, ownerID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /bookings/{id} - Failed to approve booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("PATCH /bookings/{id} - Booking decided successfully: booking_id=%d, status=%s",
		result.ID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, response)
}
