package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EvgeniyTomilov/shareit/internal/domain"
	bookingRepo "github.com/EvgeniyTomilov/shareit/internal/infra/storage/booking"
	userRepo "github.com/EvgeniyTomilov/shareit/internal/infra/storage/user"
	"github.com/EvgeniyTomilov/shareit/internal/service/bookings/models"
)

type fakeBookingRepo struct {
	bookings   map[int64]*domain.Booking
	page       []*domain.Booking
	lastFilter domain.BookingsFilter
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	booking, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return booking, nil
}

func (f *fakeBookingRepo) ListByBooker(_ context.Context, _ int64, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	f.lastFilter = filter
	return f.page, nil
}

func (f *fakeBookingRepo) ListByOwner(_ context.Context, _ int64, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	f.lastFilter = filter
	return f.page, nil
}

type fakeItemRepo struct {
	items      map[int64]*domain.Item
	ownerItems []*domain.Item
}

func (f *fakeItemRepo) GetByID(_ context.Context, id int64) (*domain.Item, error) {
	return f.items[id], nil
}

func (f *fakeItemRepo) ListByOwner(_ context.Context, _ int64) ([]*domain.Item, error) {
	return f.ownerItems, nil
}

type fakeUserRepo struct {
	users map[int64]*domain.User
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return user, nil
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newFixture() (*fakeBookingRepo, *fakeItemRepo, *fakeUserRepo, *Service) {
	start := testNow.Add(time.Hour)
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		5: {ID: 5, ItemID: 10, BookerID: 2, Start: start, End: start.Add(time.Hour), Status: domain.StatusWaiting},
	}}
	items := &fakeItemRepo{items: map[int64]*domain.Item{
		10: {ID: 10, OwnerID: 1, Name: "drill"},
	}}
	users := &fakeUserRepo{users: map[int64]*domain.User{
		1: {ID: 1, Name: "bob"},
		2: {ID: 2, Name: "alice"},
	}}

	svc := NewService(bookings, items, users, nopLogger{})
	svc.timeProvider = &fixedTime{now: testNow}
	return bookings, items, users, svc
}

func TestGetByID_VisibleToBookerAndOwner(t *testing.T) {
	_, _, _, svc := newFixture()

	for _, viewerID := range []int64{1, 2} {
		resp, err := svc.GetByID(context.Background(), 5, viewerID)
		require.NoError(t, err, "viewer %d", viewerID)
		assert.Equal(t, int64(5), resp.ID)
		assert.Equal(t, "drill", resp.Item.Name)
		assert.Equal(t, "alice", resp.Booker.Name)
	}
}

func TestGetByID_HiddenFromThirdParty(t *testing.T) {
	_, _, _, svc := newFixture()

	_, err := svc.GetByID(context.Background(), 5, 7)

	assert.ErrorIs(t, err, ErrBookingNotFound, "third party must not learn the booking exists")
}

func TestGetByID_NotFound(t *testing.T) {
	_, _, _, svc := newFixture()

	_, err := svc.GetByID(context.Background(), 99, 1)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestListForBooker_FilterBuiltFromRequest(t *testing.T) {
	bookings, _, _, svc := newFixture()

	_, err := svc.ListForBooker(context.Background(), &models.ListBookingsRequest{
		UserID: 2,
		State:  "FUTURE",
		From:   25,
		Size:   10,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StateFuture, bookings.lastFilter.State)
	assert.Equal(t, testNow, bookings.lastFilter.Now, "now is fixed once per request")
	assert.Equal(t, 2, bookings.lastFilter.Page)
	assert.Equal(t, 10, bookings.lastFilter.Size)
}

func TestListForBooker_UnsupportedState(t *testing.T) {
	_, _, _, svc := newFixture()

	_, err := svc.ListForBooker(context.Background(), &models.ListBookingsRequest{
		UserID: 2,
		State:  "SOMEDAY",
		Size:   10,
	})

	assert.ErrorIs(t, err, domain.ErrUnsupportedState)
}

func TestListForBooker_UnknownUser(t *testing.T) {
	_, _, _, svc := newFixture()

	_, err := svc.ListForBooker(context.Background(), &models.ListBookingsRequest{
		UserID: 77,
		State:  "ALL",
		Size:   10,
	})

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestListForBooker_InvalidPage(t *testing.T) {
	_, _, _, svc := newFixture()

	_, err := svc.ListForBooker(context.Background(), &models.ListBookingsRequest{
		UserID: 2,
		State:  "ALL",
		From:   -1,
		Size:   10,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.ListForBooker(context.Background(), &models.ListBookingsRequest{
		UserID: 2,
		State:  "ALL",
		Size:   0,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListForOwner_NoItems(t *testing.T) {
	_, items, _, svc := newFixture()
	items.ownerItems = nil

	_, err := svc.ListForOwner(context.Background(), &models.ListBookingsRequest{
		UserID: 1,
		State:  "ALL",
		Size:   10,
	})

	assert.ErrorIs(t, err, ErrNoItems)
}

func TestListForOwner_Success(t *testing.T) {
	bookings, items, _, svc := newFixture()
	items.ownerItems = []*domain.Item{items.items[10]}
	bookings.page = []*domain.Booking{bookings.bookings[5]}

	resp, err := svc.ListForOwner(context.Background(), &models.ListBookingsRequest{
		UserID: 1,
		State:  "WAITING",
		Size:   10,
	})

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(5), resp.Bookings[0].ID)
	assert.Equal(t, string(domain.StatusWaiting), resp.Bookings[0].Status)
	assert.Equal(t, domain.StateWaiting, bookings.lastFilter.State)
}
