package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/EvgeniyTomilov/shareit/internal/domain"
	bookingRepo "github.com/EvgeniyTomilov/shareit/internal/infra/storage/booking"
	userRepo "github.com/EvgeniyTomilov/shareit/internal/infra/storage/user"
	"github.com/EvgeniyTomilov/shareit/internal/service/bookings/models"
)

// Service сервис чтения бронирований: одиночный просмотр с контролем доступа
// и темпоральные выборки для арендатора и владельца
type Service struct {
	bookingRepo  BookingRepository
	itemRepo     ItemRepository
	userRepo     UserRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	itemRepo ItemRepository,
	userRepo UserRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		itemRepo:     itemRepo,
		userRepo:     userRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
// Просмотр доступен только арендатору или владельцу вещи; остальным
// возвращается ErrBookingNotFound, не раскрывая существование бронирования
func (s *Service) GetByID(ctx context.Context, id int64, viewerID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, viewerID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	item, err := s.itemRepo.GetByID(ctx, booking.ItemID)
	if err != nil {
		s.logger.Error("GetByID: failed to get item id=%d: %v", booking.ItemID, err)
		return nil, fmt.Errorf("%w: GetByID - failed to get item: %v", ErrInternal, err)
	}

	if !booking.VisibleTo(viewerID, item.OwnerID) {
		s.logger.Warn("GetByID: booking id=%d is not visible to user=%d", id, viewerID)
		return nil, ErrBookingNotFound
	}

	booker, err := s.userRepo.GetByID(ctx, booking.BookerID)
	if err != nil {
		s.logger.Error("GetByID: failed to get booker id=%d: %v", booking.BookerID, err)
		return nil, fmt.Errorf("%w: GetByID - failed to get booker: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking, item, booker), nil
}

// ListForBooker получает страницу бронирований пользователя-арендатора,
// отфильтрованную по темпоральному состоянию
func (s *Service) ListForBooker(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("ListForBooker: user=%d, state=%q, from=%d, size=%d", req.UserID, req.State, req.From, req.Size)

	filter, err := s.buildFilter(ctx, req)
	if err != nil {
		return nil, err
	}

	page, err := s.bookingRepo.ListByBooker(ctx, req.UserID, filter)
	if err != nil {
		s.logger.Error("ListForBooker: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: ListForBooker - repository error: %v", ErrInternal, err)
	}

	resp, err := s.toListResponse(ctx, page)
	if err != nil {
		return nil, err
	}

	s.logger.Info("ListForBooker: successfully fetched %d bookings for user=%d", len(resp.Bookings), req.UserID)
	return resp, nil
}

// ListForOwner получает страницу бронирований вещей владельца,
// отфильтрованную по темпоральному состоянию
// Пользователь без вещей получает ErrNoItems
func (s *Service) ListForOwner(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("ListForOwner: user=%d, state=%q, from=%d, size=%d", req.UserID, req.State, req.From, req.Size)

	filter, err := s.buildFilter(ctx, req)
	if err != nil {
		return nil, err
	}

	items, err := s.itemRepo.ListByOwner(ctx, req.UserID)
	if err != nil {
		s.logger.Error("ListForOwner: failed to list items of user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: ListForOwner - failed to list items: %v", ErrInternal, err)
	}
	if len(items) == 0 {
		s.logger.Warn("ListForOwner: user=%d owns no items", req.UserID)
		return nil, ErrNoItems
	}

	page, err := s.bookingRepo.ListByOwner(ctx, req.UserID, filter)
	if err != nil {
		s.logger.Error("ListForOwner: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: ListForOwner - repository error: %v", ErrInternal, err)
	}

	resp, err := s.toListResponse(ctx, page)
	if err != nil {
		return nil, err
	}

	s.logger.Info("ListForOwner: successfully fetched %d bookings for user=%d", len(resp.Bookings), req.UserID)
	return resp, nil
}

// buildFilter валидирует запрос, резолвит вызывающего пользователя и
// собирает фильтр выборки
// "now" фиксируется здесь один раз и используется всеми предикатами запроса
func (s *Service) buildFilter(ctx context.Context, req *models.ListBookingsRequest) (domain.BookingsFilter, error) {
	var filter domain.BookingsFilter

	if req.From < 0 || req.Size <= 0 {
		s.logger.Warn("buildFilter: invalid page params from=%d size=%d", req.From, req.Size)
		return filter, fmt.Errorf("%w: from must be >= 0 and size > 0", ErrInvalidInput)
	}

	state, err := domain.ParseTemporalState(req.State)
	if err != nil {
		s.logger.Warn("buildFilter: unsupported state %q", req.State)
		return filter, err
	}

	if _, err := s.userRepo.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("buildFilter: user id=%d not found", req.UserID)
			return filter, ErrUserNotFound
		}
		s.logger.Error("buildFilter: failed to get user id=%d: %v", req.UserID, err)
		return filter, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	return domain.BookingsFilter{
		State: state,
		Now:   s.timeProvider.Now(),
		Page:  domain.PageFromOffset(req.From, req.Size),
		Size:  req.Size,
	}, nil
}

// toListResponse собирает ответ, снимая для каждого бронирования снимки
// вещи и арендатора на момент чтения
func (s *Service) toListResponse(ctx context.Context, page []*domain.Booking) (*models.BookingListResponse, error) {
	resp := &models.BookingListResponse{
		Bookings: make([]models.BookingResponse, 0, len(page)),
	}

	// Кэшируем снимки в рамках одной страницы, чтобы не ходить в хранилище
	// за одной и той же вещью/пользователем повторно
	items := make(map[int64]*domain.Item)
	users := make(map[int64]*domain.User)

	for _, booking := range page {
		item, ok := items[booking.ItemID]
		if !ok {
			var err error
			item, err = s.itemRepo.GetByID(ctx, booking.ItemID)
			if err != nil {
				s.logger.Error("toListResponse: failed to get item id=%d: %v", booking.ItemID, err)
				return nil, fmt.Errorf("%w: failed to get item: %v", ErrInternal, err)
			}
			items[booking.ItemID] = item
		}

		booker, ok := users[booking.BookerID]
		if !ok {
			var err error
			booker, err = s.userRepo.GetByID(ctx, booking.BookerID)
			if err != nil {
				s.logger.Error("toListResponse: failed to get booker id=%d: %v", booking.BookerID, err)
				return nil, fmt.Errorf("%w: failed to get booker: %v", ErrInternal, err)
			}
			users[booking.BookerID] = booker
		}

		resp.Bookings = append(resp.Bookings, *models.FromDomainBooking(booking, item, booker))
	}

	return resp, nil
}
