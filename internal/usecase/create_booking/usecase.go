package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/EvgeniyTomilov/shareit/internal/domain"
	itemRepo "github.com/EvgeniyTomilov/shareit/internal/infra/storage/item"
	userRepo "github.com/EvgeniyTomilov/shareit/internal/infra/storage/user"
)

// UseCase use case для создания бронирования
//
// Пересечения с другими бронированиями той же вещи не проверяются:
// владелец разрешает конфликты на этапе подтверждения
type UseCase struct {
	bookingRepo  BookingRepository
	itemRepo     ItemRepository
	userRepo     UserRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	itemRepo ItemRepository,
	userRepo UserRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		itemRepo:     itemRepo,
		userRepo:     userRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Новое бронирование всегда создается в статусе WAITING
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: booker=%d, item=%d, start=%s, end=%s",
		req.BookerID, req.ItemID, req.Start, req.End)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем вещь и проверяем доступность
	item, err := uc.itemRepo.GetByID(ctx, req.ItemID)
	if err != nil {
		if errors.Is(err, itemRepo.ErrItemNotFound) {
			uc.logger.Warn("CreateBooking: item id=%d not found", req.ItemID)
			return nil, ErrItemNotFound
		}
		uc.logger.Error("CreateBooking: failed to get item id=%d: %v", req.ItemID, err)
		return nil, fmt.Errorf("%w: failed to get item: %v", ErrInternal, err)
	}

	if !item.Available {
		uc.logger.Warn("CreateBooking: item id=%d is not available", req.ItemID)
		return nil, ErrItemUnavailable
	}

	// 4. Валидация временного диапазона
	if err := validateTimeRange(req.Start, req.End, now); err != nil {
		uc.logger.Warn("CreateBooking: time range validation failed: %v", err)
		return nil, err
	}

	// 5. Получаем арендатора
	booker, err := uc.userRepo.GetByID(ctx, req.BookerID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("CreateBooking: user id=%d not found", req.BookerID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("CreateBooking: failed to get user id=%d: %v", req.BookerID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	// 6. Владелец не может бронировать собственную вещь
	// Проверка выполняется до какой-либо записи в хранилище
	if booker.ID == item.OwnerID {
		uc.logger.Warn("CreateBooking: user id=%d attempts to book own item id=%d", req.BookerID, req.ItemID)
		return nil, ErrOwnBooking
	}

	// 7. Создаем бронирование в сериализуемой транзакции
	var result *domain.Booking

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking := &domain.Booking{
			ItemID:   item.ID,
			BookerID: booker.ID,
			Start:    req.Start,
			End:      req.End,
			Status:   domain.StatusWaiting,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d in status=%s", result.ID, result.Status)

	return newResponse(result, item, booker), nil
}
