package domain

import "time"

// Comment represents a renter's comment left after a completed rental
type Comment struct {
	ID        int64
	ItemID    int64
	AuthorID  int64
	Text      string
	CreatedAt time.Time
}
