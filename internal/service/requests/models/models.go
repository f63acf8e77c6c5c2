package models

import (
	"time"

	"github.com/EvgeniyTomilov/shareit/internal/domain"
)

// CreateRequestRequest запрос на создание запроса вещи
type CreateRequestRequest struct {
	RequesterID int64
	Description string
}

// ListOthersRequest запрос страницы чужих запросов вещей
type ListOthersRequest struct {
	UserID int64
	From   int
	Size   int
}

// ItemShort вещь, созданная в ответ на запрос
type ItemShort struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   int64  `json:"requestId"`
	OwnerID     int64  `json:"ownerId"`
}

// RequestResponse ответ с данными запроса вещи и вещами-ответами
type RequestResponse struct {
	ID          int64       `json:"id"`
	Description string      `json:"description"`
	Created     time.Time   `json:"created"`
	Items       []ItemShort `json:"items"`
}

// FromDomainRequest конвертирует запрос и вещи-ответы в DTO
func FromDomainRequest(req *domain.ItemRequest, items []*domain.Item) *RequestResponse {
	resp := &RequestResponse{
		ID:          req.ID,
		Description: req.Description,
		Created:     req.CreatedAt,
		Items:       make([]ItemShort, 0, len(items)),
	}

	for _, item := range items {
		var requestID int64
		if item.RequestID != nil {
			requestID = *item.RequestID
		}
		resp.Items = append(resp.Items, ItemShort{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			Available:   item.Available,
			RequestID:   requestID,
			OwnerID:     item.OwnerID,
		})
	}

	return resp
}
