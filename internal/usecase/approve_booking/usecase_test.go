package approve_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EvgeniyTomilov/shareit/internal/domain"
	bookingRepo "github.com/EvgeniyTomilov/shareit/internal/infra/storage/booking"
)

type fakeBookingRepo struct {
	bookings  map[int64]*domain.Booking
	decideErr error
	decided   []domain.BookingStatus
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	booking, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	out := *booking
	return &out, nil
}

func (f *fakeBookingRepo) DecideStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	if f.decideErr != nil {
		return f.decideErr
	}
	f.decided = append(f.decided, status)
	f.bookings[id].Status = status
	return nil
}

type fakeItemRepo struct {
	items map[int64]*domain.Item
}

func (f *fakeItemRepo) GetByID(_ context.Context, id int64) (*domain.Item, error) {
	return f.items[id], nil
}

type fakeUserRepo struct {
	users map[int64]*domain.User
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	return f.users[id], nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newFixture(status domain.BookingStatus) (*fakeBookingRepo, *UseCase) {
	start := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		5: {ID: 5, ItemID: 10, BookerID: 2, Start: start, End: start.Add(time.Hour), Status: status},
	}}
	items := &fakeItemRepo{items: map[int64]*domain.Item{
		10: {ID: 10, OwnerID: 1, Name: "drill"},
	}}
	users := &fakeUserRepo{users: map[int64]*domain.User{
		2: {ID: 2, Name: "alice"},
	}}

	return bookings, NewUseCase(bookings, items, users, nopLogger{})
}

func TestApproveBooking_Approve(t *testing.T) {
	bookings, uc := newFixture(domain.StatusWaiting)

	resp, err := uc.Execute(context.Background(), &Request{OwnerID: 1, BookingID: 5, Approved: true})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusApproved), resp.Status)
	assert.Equal(t, []domain.BookingStatus{domain.StatusApproved}, bookings.decided)
}

func TestApproveBooking_Reject(t *testing.T) {
	_, uc := newFixture(domain.StatusWaiting)

	resp, err := uc.Execute(context.Background(), &Request{OwnerID: 1, BookingID: 5, Approved: false})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusRejected), resp.Status)
}

func TestApproveBooking_NotFound(t *testing.T) {
	_, uc := newFixture(domain.StatusWaiting)

	_, err := uc.Execute(context.Background(), &Request{OwnerID: 1, BookingID: 99, Approved: true})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestApproveBooking_AlreadyDecided(t *testing.T) {
	// Проверка статуса идет раньше проверки владельца, поэтому уже решенное
	// бронирование дает ErrSecondaryApproval даже чужому пользователю
	bookings, uc := newFixture(domain.StatusApproved)

	_, err := uc.Execute(context.Background(), &Request{OwnerID: 99, BookingID: 5, Approved: false})

	assert.ErrorIs(t, err, ErrSecondaryApproval)
	assert.Empty(t, bookings.decided)
}

func TestApproveBooking_RejectAfterApproveForbidden(t *testing.T) {
	_, uc := newFixture(domain.StatusWaiting)

	_, err := uc.Execute(context.Background(), &Request{OwnerID: 1, BookingID: 5, Approved: true})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), &Request{OwnerID: 1, BookingID: 5, Approved: false})
	assert.ErrorIs(t, err, ErrSecondaryApproval)
}

func TestApproveBooking_NonOwnerHidden(t *testing.T) {
	// Не владелец получает not found, а не отказ в доступе
	bookings, uc := newFixture(domain.StatusWaiting)

	_, err := uc.Execute(context.Background(), &Request{OwnerID: 7, BookingID: 5, Approved: true})

	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.Empty(t, bookings.decided)
}

func TestApproveBooking_LostRace(t *testing.T) {
	// Конкурентное решение успело первым: условная запись вернула 0 строк
	bookings, uc := newFixture(domain.StatusWaiting)
	bookings.decideErr = bookingRepo.ErrStatusAlreadySet

	_, err := uc.Execute(context.Background(), &Request{OwnerID: 1, BookingID: 5, Approved: true})

	assert.ErrorIs(t, err, ErrSecondaryApproval)
}

func TestApproveBooking_InvalidIDs(t *testing.T) {
	_, uc := newFixture(domain.StatusWaiting)

	_, err := uc.Execute(context.Background(), &Request{OwnerID: 0, BookingID: 5, Approved: true})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
