package create_booking

import (
	"time"

	createBooking "github.com/EvgeniyTomilov/shareit/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ItemID int64  `json:"itemId"`
	Start  string `json:"start"` // "2025-10-15T10:00:00Z"
	End    string `json:"end"`
}

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

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(bookerID int64) (*createBooking.Request, error) {
	start, err := time.Parse(time.RFC3339, r.Start)
	if err != nil {
		return nil, err
	}

	end, err := time.Parse(time.RFC3339, r.End)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		BookerID: bookerID,
		ItemID:   r.ItemID,
		Start:    start,
		End:      end,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
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
