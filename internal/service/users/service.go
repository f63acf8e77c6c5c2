package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/EvgeniyTomilov/shareit/internal/domain"
	userRepo "github.com/EvgeniyTomilov/shareit/internal/infra/storage/user"
	"github.com/EvgeniyTomilov/shareit/internal/service/users/models"
)

// Service сервис реестра пользователей
type Service struct {
	userRepo UserRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(userRepo UserRepository, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Create создает нового пользователя
func (s *Service) Create(ctx context.Context, req *models.CreateUserRequest) (*models.UserResponse, error) {
	s.logger.Info("Create: name=%q, email=%q", req.Name, req.Email)

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" {
		return nil, fmt.Errorf("%w: name and email are required", ErrInvalidInput)
	}

	user := &domain.User{
		Name:  req.Name,
		Email: req.Email,
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, userRepo.ErrEmailTaken) {
			s.logger.Warn("Create: email %q already in use", req.Email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created user id=%d", created.ID)
	return models.FromDomainUser(created), nil
}

// GetByID получает пользователя по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.UserResponse, error) {
	s.logger.Info("GetByID: fetching user id=%d", id)

	if id < 1 {
		return nil, fmt.Errorf("%w: id can't be less then 1", ErrInvalidInput)
	}

	user, err := s.getUser(ctx, id)
	if err != nil {
		return nil, err
	}

	return models.FromDomainUser(user), nil
}

// List получает всех пользователей
func (s *Service) List(ctx context.Context) ([]*models.UserResponse, error) {
	s.logger.Info("List: fetching all users")

	found, err := s.userRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	result := make([]*models.UserResponse, 0, len(found))
	for _, user := range found {
		result = append(result, models.FromDomainUser(user))
	}

	return result, nil
}

// Update частично обновляет имя и email пользователя
func (s *Service) Update(ctx context.Context, req *models.UpdateUserRequest) (*models.UserResponse, error) {
	s.logger.Info("Update: user id=%d", req.UserID)

	user, err := s.getUser(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	user.Apply(domain.UserUpdate{
		Name:  req.Name,
		Email: req.Email,
	})

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, userRepo.ErrEmailTaken) {
			s.logger.Warn("Update: email %q already in use", user.Email)
			return nil, ErrEmailTaken
		}
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("Update: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated user id=%d", user.ID)
	return models.FromDomainUser(user), nil
}

// Delete удаляет пользователя
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: user id=%d", id)

	if id < 1 {
		return fmt.Errorf("%w: id can't be less then 1", ErrInvalidInput)
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Delete: user id=%d not found", id)
			return ErrUserNotFound
		}
		s.logger.Error("Delete: repository error for user=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	return nil
}

// getUser получает пользователя, транслируя отсутствие в ErrUserNotFound
func (s *Service) getUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("getUser: user id=%d not found", id)
			return nil, ErrUserNotFound
		}
		s.logger.Error("getUser: repository error for user=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}
	return user, nil
}
