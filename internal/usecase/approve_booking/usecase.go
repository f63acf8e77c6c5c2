package approve_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/EvgeniyTomilov/shareit/internal/domain"
	bookingRepo "github.com/EvgeniyTomilov/shareit/internal/infra/storage/booking"
)

// UseCase use case для решения владельца по бронированию
// Единственный переход состояния: WAITING -> APPROVED | REJECTED, ровно один раз
type UseCase struct {
	bookingRepo BookingRepository
	itemRepo    ItemRepository
	userRepo    UserRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	itemRepo ItemRepository,
	userRepo UserRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// Execute выполняет use case решения по бронированию
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ApproveBooking: owner=%d, booking=%d, approved=%t",
		req.OwnerID, req.BookingID, req.Approved)

	if req.OwnerID <= 0 || req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: ids must be positive", ErrInvalidInput)
	}

	// 1. Получаем бронирование
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("ApproveBooking: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("ApproveBooking: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// 2. Решение допустимо только по ожидающему бронированию
	if !booking.IsWaiting() {
		uc.logger.Warn("ApproveBooking: booking id=%d already decided, status=%s", booking.ID, booking.Status)
		return nil, ErrSecondaryApproval
	}

	// 3. Принять решение может только владелец вещи
	item, err := uc.itemRepo.GetByID(ctx, booking.ItemID)
	if err != nil {
		uc.logger.Error("ApproveBooking: failed to get item id=%d: %v", booking.ItemID, err)
		return nil, fmt.Errorf("%w: failed to get item: %v", ErrInternal, err)
	}

	if item.OwnerID != req.OwnerID {
		uc.logger.Warn("ApproveBooking: user id=%d is not the owner of item id=%d", req.OwnerID, item.ID)
		return nil, ErrBookingNotFound
	}

	// 4. Переводим статус условной записью (WHERE status = WAITING)
	// Проигравший гонку конкурентный вызов получает ErrSecondaryApproval
	newStatus := domain.StatusRejected
	if req.Approved {
		newStatus = domain.StatusApproved
	}

	if err := uc.bookingRepo.DecideStatus(ctx, booking.ID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrStatusAlreadySet) {
			uc.logger.Warn("ApproveBooking: booking id=%d lost decision race", booking.ID)
			return nil, ErrSecondaryApproval
		}
		uc.logger.Error("ApproveBooking: failed to update status for booking id=%d: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
	}

	booking.Status = newStatus

	// 5. Собираем снимок арендатора для ответа
	booker, err := uc.userRepo.GetByID(ctx, booking.BookerID)
	if err != nil {
		uc.logger.Error("ApproveBooking: failed to get booker id=%d: %v", booking.BookerID, err)
		return nil, fmt.Errorf("%w: failed to get booker: %v", ErrInternal, err)
	}

	uc.logger.Info("ApproveBooking: booking id=%d decided, status=%s", booking.ID, booking.Status)

	return newResponse(booking, item, booker), nil
}
