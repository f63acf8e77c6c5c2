package domain

import "time"

// ItemRequest represents a user's request for an item nobody has listed yet
type ItemRequest struct {
	ID          int64
	RequesterID int64
	Description string
	CreatedAt   time.Time
}
