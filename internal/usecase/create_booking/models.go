package create_booking

import (
	"time"

	"github.com/EvgeniyTomilov/shareit/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	BookerID int64     // ID пользователя-арендатора
	ItemID   int64     // ID вещи
	Start    time.Time // Начало аренды
	End      time.Time // Окончание аренды
}

// ItemInfo снимок вещи на момент создания бронирования
type ItemInfo struct {
	ID   int64
	Name string
}

// UserInfo снимок арендатора на момент создания бронирования
type UserInfo struct {
	ID   int64
	Name string
}

// Response модель ответа с созданным бронированием
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
