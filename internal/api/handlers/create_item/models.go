package create_item

import "github.com/EvgeniyTomilov/shareit/internal/service/items/models"

// CreateItemRequest HTTP request model
type CreateItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   *bool  `json:"available"`
	RequestID   *int64 `json:"requestId,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateItemRequest) ToServiceRequest(ownerID int64) *models.CreateItemRequest {
	available := false
	if r.Available != nil {
		available = *r.Available
	}

	return &models.CreateItemRequest{
		OwnerID:     ownerID,
		Name:        r.Name,
		Description: r.Description,
		Available:   available,
		RequestID:   r.RequestID,
	}
}
