package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBooking_VisibleTo(t *testing.T) {
	booking := &Booking{ID: 1, ItemID: 10, BookerID: 2}

	assert.True(t, booking.VisibleTo(2, 3), "booker sees own booking")
	assert.True(t, booking.VisibleTo(3, 3), "item owner sees booking of his item")
	assert.False(t, booking.VisibleTo(4, 3), "third party does not see booking")
}

func TestBooking_IsWaiting(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusWaiting}).IsWaiting())
	assert.False(t, (&Booking{Status: StatusApproved}).IsWaiting())
	assert.False(t, (&Booking{Status: StatusRejected}).IsWaiting())
}
