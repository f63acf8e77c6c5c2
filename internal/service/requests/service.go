package requests

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/EvgeniyTomilov/shareit/internal/domain"
	requestRepo "github.com/EvgeniyTomilov/shareit/internal/infra/storage/request"
	userRepo "github.com/EvgeniyTomilov/shareit/internal/infra/storage/user"
	"github.com/EvgeniyTomilov/shareit/internal/service/requests/models"
)

// Service сервис запросов вещей: пользователи описывают, что хотели бы
// арендовать, владельцы отвечают созданием вещей со ссылкой на запрос
type Service struct {
	requestRepo  RequestRepository
	itemRepo     ItemRepository
	userRepo     UserRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса запросов
func NewService(
	requestRepo RequestRepository,
	itemRepo ItemRepository,
	userRepo UserRepository,
	logger Logger,
) *Service {
	return &Service{
		requestRepo:  requestRepo,
		itemRepo:     itemRepo,
		userRepo:     userRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Create создает новый запрос вещи
func (s *Service) Create(ctx context.Context, req *models.CreateRequestRequest) (*models.RequestResponse, error) {
	s.logger.Info("Create: requester=%d", req.RequesterID)

	if strings.TrimSpace(req.Description) == "" {
		return nil, fmt.Errorf("%w: description is required", ErrInvalidInput)
	}

	if err := s.resolveUser(ctx, req.RequesterID); err != nil {
		return nil, err
	}

	request := &domain.ItemRequest{
		RequesterID: req.RequesterID,
		Description: req.Description,
		CreatedAt:   s.timeProvider.Now(),
	}

	created, err := s.requestRepo.Create(ctx, request)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created request id=%d", created.ID)
	return models.FromDomainRequest(created, nil), nil
}

// ListOwn получает все запросы пользователя с вещами-ответами, новые первыми
func (s *Service) ListOwn(ctx context.Context, userID int64) ([]*models.RequestResponse, error) {
	s.logger.Info("ListOwn: user=%d", userID)

	if err := s.resolveUser(ctx, userID); err != nil {
		return nil, err
	}

	found, err := s.requestRepo.ListByRequester(ctx, userID)
	if err != nil {
		s.logger.Error("ListOwn: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: ListOwn - repository error: %v", ErrInternal, err)
	}

	return s.toResponses(ctx, found)
}

// ListOthers получает страницу чужих запросов с вещами-ответами
func (s *Service) ListOthers(ctx context.Context, req *models.ListOthersRequest) ([]*models.RequestResponse, error) {
	s.logger.Info("ListOthers: user=%d, from=%d, size=%d", req.UserID, req.From, req.Size)

	if req.From < 0 || req.Size <= 0 {
		s.logger.Warn("ListOthers: invalid page params from=%d size=%d", req.From, req.Size)
		return nil, fmt.Errorf("%w: from must be >= 0 and size > 0", ErrInvalidInput)
	}

	if err := s.resolveUser(ctx, req.UserID); err != nil {
		return nil, err
	}

	page := domain.PageFromOffset(req.From, req.Size)

	found, err := s.requestRepo.ListOthers(ctx, req.UserID, page, req.Size)
	if err != nil {
		s.logger.Error("ListOthers: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: ListOthers - repository error: %v", ErrInternal, err)
	}

	return s.toResponses(ctx, found)
}

// GetByID получает запрос по ID с вещами-ответами
// Доступен любому существующему пользователю
func (s *Service) GetByID(ctx context.Context, requestID, userID int64) (*models.RequestResponse, error) {
	s.logger.Info("GetByID: request=%d, user=%d", requestID, userID)

	if requestID < 1 {
		return nil, fmt.Errorf("%w: id can't be less then 1", ErrInvalidInput)
	}

	if err := s.resolveUser(ctx, userID); err != nil {
		return nil, err
	}

	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, requestRepo.ErrRequestNotFound) {
			s.logger.Warn("GetByID: request id=%d not found", requestID)
			return nil, ErrRequestNotFound
		}
		s.logger.Error("GetByID: repository error for request=%d: %v", requestID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	items, err := s.itemRepo.ListByRequest(ctx, request.ID)
	if err != nil {
		s.logger.Error("GetByID: failed to list items of request=%d: %v", request.ID, err)
		return nil, fmt.Errorf("%w: failed to list items: %v", ErrInternal, err)
	}

	return models.FromDomainRequest(request, items), nil
}

// toResponses собирает ответы, вкладывая в каждый запрос созданные по нему вещи
func (s *Service) toResponses(ctx context.Context, found []*domain.ItemRequest) ([]*models.RequestResponse, error) {
	result := make([]*models.RequestResponse, 0, len(found))
	for _, request := range found {
		items, err := s.itemRepo.ListByRequest(ctx, request.ID)
		if err != nil {
			s.logger.Error("toResponses: failed to list items of request=%d: %v", request.ID, err)
			return nil, fmt.Errorf("%w: failed to list items: %v", ErrInternal, err)
		}
		result = append(result, models.FromDomainRequest(request, items))
	}
	return result, nil
}

// resolveUser проверяет существование пользователя
func (s *Service) resolveUser(ctx context.Context, userID int64) error {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("resolveUser: user id=%d not found", userID)
			return ErrUserNotFound
		}
		s.logger.Error("resolveUser: repository error for user=%d: %v", userID, err)
		return fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}
	return nil
}
