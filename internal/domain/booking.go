package domain

import "time"

// BookingStatus represents the persisted status of a booking
type BookingStatus string

const (
	StatusWaiting  BookingStatus = "WAITING"
	StatusApproved BookingStatus = "APPROVED"
	StatusRejected BookingStatus = "REJECTED"
)

// Booking represents a time-bounded rental request on an item
type Booking struct {
	ID       int64
	ItemID   int64
	BookerID int64
	Start    time.Time
	End      time.Time
	Status   BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsWaiting returns true if the booking still awaits the owner's decision
func (b *Booking) IsWaiting() bool {
	return b.Status == StatusWaiting
}

// IsDecided returns true if the booking reached a terminal status
func (b *Booking) IsDecided() bool {
	return b.Status == StatusApproved || b.Status == StatusRejected
}

// VisibleTo returns true if the booking may be observed by the given user
// Просмотр доступен только арендатору или владельцу вещи; itemOwnerID
// приходит от вызывающего вместе с вещью
func (b *Booking) VisibleTo(userID, itemOwnerID int64) bool {
	return b.BookerID == userID || itemOwnerID == userID
}

// BookingsFilter фильтр страницы бронирований для booker- и owner-выборок
// Now фиксируется один раз на операцию и подставляется в предикаты
// темпоральных состояний
type BookingsFilter struct {
	State TemporalState
	Now   time.Time
	Page  int
	Size  int
}
