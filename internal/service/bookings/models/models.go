package models

import (
	"time"

	"github.com/EvgeniyTomilov/shareit/internal/domain"
)

// Request модели

// ListBookingsRequest запрос страницы бронирований (booker- или owner-выборка)
// State валидируется на уровне сервиса; From/Size - offset-контракт источника
type ListBookingsRequest struct {
	UserID int64
	State  string
	From   int
	Size   int
}

// Response модели

// ItemShort снимок вещи в ответе бронирования
// Снимается на момент чтения и не синхронизируется с последующими изменениями
type ItemShort struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// UserShort снимок арендатора в ответе бронирования
type UserShort struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID     int64     `json:"id"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Status string    `json:"status"`
	Item   ItemShort `json:"item"`
	Booker UserShort `json:"booker"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO со снимками вещи и арендатора
func FromDomainBooking(b *domain.Booking, item *domain.Item, booker *domain.User) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:     b.ID,
		Start:  b.Start,
		End:    b.End,
		Status: string(b.Status),
		Item: ItemShort{
			ID:   item.ID,
			Name: item.Name,
		},
		Booker: UserShort{
			ID:   booker.ID,
			Name: booker.Name,
		},
	}
}
