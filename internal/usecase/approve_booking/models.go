package approve_booking

import (
	"time"

	"github.com/EvgeniyTomilov/shareit/internal/domain"
)

// Request модель запроса на решение по бронированию
type Request struct {
	OwnerID   int64 // ID пользователя, принимающего решение
	BookingID int64 // ID бронирования
	Approved  bool  // true - подтвердить, false - отклонить
}

// ItemInfo снимок вещи
type ItemInfo struct {
	ID   int64
	Name string
}

// UserInfo снимок арендатора
type UserInfo struct {
	ID   int64
	Name string
}

// Response модель ответа с обновленным бронированием
type Response struct {
	ID     int64
	Start  time.Time
	End    time.Time
	Status string

	Item   ItemInfo
	Booker UserInfo

	CreatedAt time.Time
	UpdatedAt time.Time
}

func newResponse(b *domain.Booking, item *domain.Item, booker *domain.User) *Response {
	return &Response{
		ID:     b.ID,
		Start:  b.Start,
		End:    b.End,
		Status: string(b.Status),
		Item: ItemInfo{
			ID:   item.ID,
			Name: item.Name,
		},
		Booker: UserInfo{
			ID:   booker.ID,
			Name: booker.Name,
		},
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
