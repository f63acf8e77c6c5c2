package approve_booking

import (
	"time"

	approveBooking "github.com/EvgeniyTomilov/shareit/internal/usecase/approve_booking"
)

// ItemInfo снимок вещи в ответе
type ItemInfo struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// UserInfo снимок арендатора в ответе
type UserInfo struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID        int64    `json:"id"`
	Start     string   `json:"start"`
	End       string   `json:"end"`
	Status    string   `json:"status"`
	Item      ItemInfo `json:"item"`
	Booker    UserInfo `json:"booker"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *approveBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:     resp.ID,
		Start:  resp.Start.Format(time.RFC3339),
		End:    resp.End.Format(time.RFC3339),
		Status: resp.Status,
		Item: ItemInfo{
			ID:   resp.Item.ID,
			Name: resp.Item.Name,
		},
		Booker: UserInfo{
			ID:   resp.Booker.ID,
			Name: resp.Booker.Name,
		},
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}
}
