package models

import "github.com/EvgeniyTomilov/shareit/internal/domain"

// CreateUserRequest запрос на создание пользователя
type CreateUserRequest struct {
	Name  string
	Email string
}

// UpdateUserRequest запрос на частичное обновление пользователя
type UpdateUserRequest struct {
	UserID int64
	Name   *string
	Email  *string
}

// UserResponse ответ с данными пользователя
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// FromDomainUser конвертирует domain модель в DTO
func FromDomainUser(user *domain.User) *UserResponse {
	if user == nil {
		return nil
	}

	return &UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}
