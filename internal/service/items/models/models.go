package models

import (
	"time"

	"github.com/EvgeniyTomilov/shareit/internal/domain"
)

// Request модели

// CreateItemRequest запрос на создание вещи
type CreateItemRequest struct {
	OwnerID     int64
	Name        string
	Description string
	Available   bool
	RequestID   *int64
}

// UpdateItemRequest запрос на частичное обновление вещи
type UpdateItemRequest struct {
	OwnerID     int64
	ItemID      int64
	Name        *string
	Description *string
	Available   *bool
}

// AddCommentRequest запрос на добавление комментария
type AddCommentRequest struct {
	AuthorID int64
	ItemID   int64
	Text     string
}

// Response модели

// BookingShort проекция last/next бронирования в owner-представлении вещи
type BookingShort struct {
	ID       int64 `json:"id"`
	BookerID int64 `json:"bookerId"`
}

// CommentResponse комментарий к вещи
type CommentResponse struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

// ItemResponse ответ с данными вещи
// LastBooking/NextBooking заполняются только для владельца вещи
type ItemResponse struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Available   bool              `json:"available"`
	RequestID   *int64            `json:"requestId,omitempty"`
	LastBooking *BookingShort     `json:"lastBooking,omitempty"`
	NextBooking *BookingShort     `json:"nextBooking,omitempty"`
	Comments    []CommentResponse `json:"comments"`
}

// Методы конвертации

// FromDomainItem конвертирует domain модель в DTO без проекции бронирований
func FromDomainItem(item *domain.Item) *ItemResponse {
	if item == nil {
		return nil
	}

	return &ItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Available:   item.Available,
		RequestID:   item.RequestID,
		Comments:    []CommentResponse{},
	}
}

// FromDomainBookingShort конвертирует бронирование в короткую проекцию
func FromDomainBookingShort(b *domain.Booking) *BookingShort {
	if b == nil {
		return nil
	}

	return &BookingShort{
		ID:       b.ID,
		BookerID: b.BookerID,
	}
}

// FromDomainComment конвертирует комментарий в DTO с именем автора
func FromDomainComment(c *domain.Comment, author *domain.User) CommentResponse {
	return CommentResponse{
		ID:         c.ID,
		Text:       c.Text,
		AuthorName: author.Name,
		Created:    c.CreatedAt,
	}
}
