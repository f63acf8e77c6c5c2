package items

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/EvgeniyTomilov/shareit/internal/domain"
	itemRepo "github.com/EvgeniyTomilov/shareit/internal/infra/storage/item"
	requestRepo "github.com/EvgeniyTomilov/shareit/internal/infra/storage/request"
	userRepo "github.com/EvgeniyTomilov/shareit/internal/infra/storage/user"
	"github.com/EvgeniyTomilov/shareit/internal/service/items/models"
)

// Service сервис каталога вещей: CRUD, поиск, комментарии и
// owner-проекция последнего/следующего бронирования
type Service struct {
	itemRepo     ItemRepository
	bookingRepo  BookingRepository
	commentRepo  CommentRepository
	userRepo     UserRepository
	requestRepo  RequestRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса вещей
func NewService(
	itemRepo ItemRepository,
	bookingRepo BookingRepository,
	commentRepo CommentRepository,
	userRepo UserRepository,
	requestRepo RequestRepository,
	logger Logger,
) *Service {
	return &Service{
		itemRepo:     itemRepo,
		bookingRepo:  bookingRepo,
		commentRepo:  commentRepo,
		userRepo:     userRepo,
		requestRepo:  requestRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Create создает новую вещь
func (s *Service) Create(ctx context.Context, req *models.CreateItemRequest) (*models.ItemResponse, error) {
	s.logger.Info("Create: owner=%d, name=%q", req.OwnerID, req.Name)

	if req.Name == "" || req.Description == "" {
		return nil, fmt.Errorf("%w: name and description are required", ErrInvalidInput)
	}

	if _, err := s.resolveUser(ctx, req.OwnerID); err != nil {
		return nil, err
	}

	// Если вещь создается в ответ на запрос, запрос должен существовать
	if req.RequestID != nil {
		if _, err := s.requestRepo.GetByID(ctx, *req.RequestID); err != nil {
			if errors.Is(err, requestRepo.ErrRequestNotFound) {
				s.logger.Warn("Create: item request id=%d not found", *req.RequestID)
				return nil, ErrRequestNotFound
			}
			s.logger.Error("Create: failed to get request id=%d: %v", *req.RequestID, err)
			return nil, fmt.Errorf("%w: failed to get request: %v", ErrInternal, err)
		}
	}

	item := &domain.Item{
		OwnerID:     req.OwnerID,
		Name:        req.Name,
		Description: req.Description,
		Available:   req.Available,
		RequestID:   req.RequestID,
	}

	created, err := s.itemRepo.Create(ctx, item)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created item id=%d", created.ID)
	return models.FromDomainItem(created), nil
}

// GetByID получает вещь по ID
// Владелец дополнительно видит проекцию последнего и следующего бронирования;
// остальным пользователям проекция не показывается
func (s *Service) GetByID(ctx context.Context, itemID, viewerID int64) (*models.ItemResponse, error) {
	s.logger.Info("GetByID: fetching item id=%d for user=%d", itemID, viewerID)

	if itemID < 1 || viewerID < 1 {
		return nil, fmt.Errorf("%w: id can't be less then 1", ErrInvalidInput)
	}

	item, err := s.getItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	resp := models.FromDomainItem(item)

	comments, err := s.commentsToResponse(ctx, itemID)
	if err != nil {
		return nil, err
	}
	resp.Comments = comments

	if item.OwnerID == viewerID {
		if err := s.attachBookingProjection(ctx, resp, item); err != nil {
			return nil, err
		}
	}

	return resp, nil
}

// ListByOwner получает все вещи владельца с проекцией бронирований
func (s *Service) ListByOwner(ctx context.Context, ownerID int64) ([]*models.ItemResponse, error) {
	s.logger.Info("ListByOwner: fetching items of user=%d", ownerID)

	items, err := s.itemRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error("ListByOwner: repository error for user=%d: %v", ownerID, err)
		return nil, fmt.Errorf("%w: ListByOwner - repository error: %v", ErrInternal, err)
	}

	result := make([]*models.ItemResponse, 0, len(items))
	for _, item := range items {
		resp := models.FromDomainItem(item)

		comments, err := s.commentsToResponse(ctx, item.ID)
		if err != nil {
			return nil, err
		}
		resp.Comments = comments

		// Список вещей запрашивает сам владелец, проекция добавляется всегда
		if err := s.attachBookingProjection(ctx, resp, item); err != nil {
			return nil, err
		}

		result = append(result, resp)
	}

	return result, nil
}

// Search ищет доступные вещи по тексту в названии или описании
// Пустой или пробельный запрос возвращает пустой список
func (s *Service) Search(ctx context.Context, text string) ([]*models.ItemResponse, error) {
	s.logger.Info("Search: text=%q", text)

	if strings.TrimSpace(text) == "" {
		return []*models.ItemResponse{}, nil
	}

	found, err := s.itemRepo.Search(ctx, text)
	if err != nil {
		s.logger.Error("Search: repository error: %v", err)
		return nil, fmt.Errorf("%w: Search - repository error: %v", ErrInternal, err)
	}

	result := make([]*models.ItemResponse, 0, len(found))
	for _, item := range found {
		result = append(result, models.FromDomainItem(item))
	}

	return result, nil
}

// Update частично обновляет вещь; доступно только владельцу
func (s *Service) Update(ctx context.Context, req *models.UpdateItemRequest) (*models.ItemResponse, error) {
	s.logger.Info("Update: owner=%d, item=%d", req.OwnerID, req.ItemID)

	item, err := s.getItem(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}

	if item.OwnerID != req.OwnerID {
		s.logger.Warn("Update: user=%d is not the owner of item=%d", req.OwnerID, req.ItemID)
		return nil, ErrAccessDenied
	}

	item.Apply(domain.ItemUpdate{
		Name:        req.Name,
		Description: req.Description,
		Available:   req.Available,
	})

	if err := s.itemRepo.Update(ctx, item); err != nil {
		s.logger.Error("Update: repository error for item=%d: %v", req.ItemID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated item id=%d", item.ID)
	return models.FromDomainItem(item), nil
}

// Delete удаляет вещь; доступно только владельцу
func (s *Service) Delete(ctx context.Context, ownerID, itemID int64) error {
	s.logger.Info("Delete: owner=%d, item=%d", ownerID, itemID)

	item, err := s.getItem(ctx, itemID)
	if err != nil {
		return err
	}

	if item.OwnerID != ownerID {
		s.logger.Warn("Delete: user=%d is not the owner of item=%d", ownerID, itemID)
		return ErrAccessDenied
	}

	if err := s.itemRepo.Delete(ctx, itemID); err != nil {
		s.logger.Error("Delete: repository error for item=%d: %v", itemID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	return nil
}

// AddComment добавляет комментарий арендатора к вещи
// Комментарий доступен только после завершения аренды этой вещи
func (s *Service) AddComment(ctx context.Context, req *models.AddCommentRequest) (*models.CommentResponse, error) {
	s.logger.Info("AddComment: author=%d, item=%d", req.AuthorID, req.ItemID)

	if strings.TrimSpace(req.Text) == "" {
		return nil, fmt.Errorf("%w: text is required", ErrInvalidInput)
	}

	author, err := s.resolveUser(ctx, req.AuthorID)
	if err != nil {
		return nil, err
	}

	if _, err := s.getItem(ctx, req.ItemID); err != nil {
		return nil, err
	}

	now := s.timeProvider.Now()

	ended, err := s.bookingRepo.ListEndedByBooker(ctx, req.AuthorID, now)
	if err != nil {
		s.logger.Error("AddComment: failed to list ended bookings of user=%d: %v", req.AuthorID, err)
		return nil, fmt.Errorf("%w: AddComment - failed to list bookings: %v", ErrInternal, err)
	}

	hasFinished := false
	for _, b := range ended {
		if b.ItemID == req.ItemID {
			hasFinished = true
			break
		}
	}
	if !hasFinished {
		s.logger.Warn("AddComment: user=%d has no finished booking of item=%d", req.AuthorID, req.ItemID)
		return nil, ErrNoFinishedBooking
	}

	comment := &domain.Comment{
		ItemID:    req.ItemID,
		AuthorID:  req.AuthorID,
		Text:      req.Text,
		CreatedAt: now,
	}

	created, err := s.commentRepo.Create(ctx, comment)
	if err != nil {
		s.logger.Error("AddComment: repository error: %v", err)
		return nil, fmt.Errorf("%w: AddComment - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddComment: successfully created comment id=%d", created.ID)
	resp := models.FromDomainComment(created, author)
	return &resp, nil
}

// attachBookingProjection добавляет к ответу owner-проекцию последнего и
// следующего бронирования вещи
func (s *Service) attachBookingProjection(ctx context.Context, resp *models.ItemResponse, item *domain.Item) error {
	now := s.timeProvider.Now()

	last, err := s.findLastBooking(ctx, item.ID, now)
	if err != nil {
		return err
	}
	next, err := s.findNextBooking(ctx, item.ID, now)
	if err != nil {
		return err
	}

	resp.LastBooking = models.FromDomainBookingShort(last)
	resp.NextBooking = models.FromDomainBookingShort(next)
	return nil
}

// findLastBooking выбирает APPROVED бронирование с наибольшим start_date < now
// Ключ выбора - начало аренды, не окончание: бронирование, начавшееся раньше,
// но еще не завершившееся, все равно считается "последним"
func (s *Service) findLastBooking(ctx context.Context, itemID int64, now time.Time) (*domain.Booking, error) {
	started, err := s.bookingRepo.ListStartedBefore(ctx, itemID, now)
	if err != nil {
		s.logger.Error("findLastBooking: repository error for item=%d: %v", itemID, err)
		return nil, fmt.Errorf("%w: findLastBooking - repository error: %v", ErrInternal, err)
	}

	// Выборка отсортирована по start_date по возрастанию,
	// последнее подтвержденное и есть искомое
	var last *domain.Booking
	for _, b := range started {
		if b.Status == domain.StatusApproved {
			last = b
		}
	}
	return last, nil
}

// findNextBooking выбирает APPROVED бронирование с наименьшим start_date > now
func (s *Service) findNextBooking(ctx context.Context, itemID int64, now time.Time) (*domain.Booking, error) {
	upcoming, err := s.bookingRepo.ListStartingAfter(ctx, itemID, now)
	if err != nil {
		s.logger.Error("findNextBooking: repository error for item=%d: %v", itemID, err)
		return nil, fmt.Errorf("%w: findNextBooking - repository error: %v", ErrInternal, err)
	}

	for _, b := range upcoming {
		if b.Status == domain.StatusApproved {
			return b, nil
		}
	}
	return nil, nil
}

// commentsToResponse собирает комментарии вещи, снимая имена авторов
func (s *Service) commentsToResponse(ctx context.Context, itemID int64) ([]models.CommentResponse, error) {
	comments, err := s.commentRepo.ListByItem(ctx, itemID)
	if err != nil {
		s.logger.Error("commentsToResponse: failed to list comments of item=%d: %v", itemID, err)
		return nil, fmt.Errorf("%w: failed to list comments: %v", ErrInternal, err)
	}

	result := make([]models.CommentResponse, 0, len(comments))

	// Кэшируем авторов в рамках одной вещи
	authors := make(map[int64]*domain.User)
	for _, c := range comments {
		author, ok := authors[c.AuthorID]
		if !ok {
			var err error
			author, err = s.userRepo.GetByID(ctx, c.AuthorID)
			if err != nil {
				s.logger.Error("commentsToResponse: failed to get author id=%d: %v", c.AuthorID, err)
				return nil, fmt.Errorf("%w: failed to get comment author: %v", ErrInternal, err)
			}
			authors[c.AuthorID] = author
		}
		result = append(result, models.FromDomainComment(c, author))
	}

	return result, nil
}

// getItem получает вещь, транслируя отсутствие в ErrItemNotFound
func (s *Service) getItem(ctx context.Context, itemID int64) (*domain.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, itemRepo.ErrItemNotFound) {
			s.logger.Warn("getItem: item id=%d not found", itemID)
			return nil, ErrItemNotFound
		}
		s.logger.Error("getItem: repository error for item=%d: %v", itemID, err)
		return nil, fmt.Errorf("%w: failed to get item: %v", ErrInternal, err)
	}
	return item, nil
}

// resolveUser получает пользователя, транслируя отсутствие в ErrUserNotFound
func (s *Service) resolveUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("resolveUser: user id=%d not found", userID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("resolveUser: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}
	return user, nil
}
