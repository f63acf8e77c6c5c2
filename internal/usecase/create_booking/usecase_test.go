package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EvgeniyTomilov/shareit/internal/domain"
	itemRepo "github.com/EvgeniyTomilov/shareit/internal/infra/storage/item"
	userRepo "github.com/EvgeniyTomilov/shareit/internal/infra/storage/user"
)

type fakeBookingRepo struct {
	createFn func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	created  *domain.Booking
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	f.created = booking
	if f.createFn != nil {
		return f.createFn(ctx, booking)
	}
	out := *booking
	out.ID = 1
	return &out, nil
}

type fakeItemRepo struct {
	items map[int64]*domain.Item
}

func (f *fakeItemRepo) GetByID(_ context.Context, id int64) (*domain.Item, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, itemRepo.ErrItemNotFound
	}
	return item, nil
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

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
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

func newTestUseCase(bookings *fakeBookingRepo, items *fakeItemRepo, users *fakeUserRepo, tx *fakeTxManager) *UseCase {
	uc := NewUseCase(bookings, items, users, tx, nopLogger{})
	uc.timeProvider = &fixedTime{now: testNow}
	return uc
}

func validRequest() *Request {
	return &Request{
		BookerID: 2,
		ItemID:   10,
		Start:    testNow.Add(time.Hour),
		End:      testNow.Add(2 * time.Hour),
	}
}

func TestCreateBooking_Success(t *testing.T) {
	bookings := &fakeBookingRepo{}
	items := &fakeItemRepo{items: map[int64]*domain.Item{
		10: {ID: 10, OwnerID: 1, Name: "drill", Available: true},
	}}
	users := &fakeUserRepo{users: map[int64]*domain.User{
		2: {ID: 2, Name: "alice"},
	}}
	tx := &fakeTxManager{}

	uc := newTestUseCase(bookings, items, users, tx)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusWaiting), resp.Status)
	assert.Equal(t, int64(10), resp.Item.ID)
	assert.Equal(t, int64(2), resp.Booker.ID)
	assert.Equal(t, 1, tx.calls, "booking must be created inside a transaction")
	assert.Equal(t, domain.StatusWaiting, bookings.created.Status)
}

func TestCreateBooking_ItemNotFound(t *testing.T) {
	bookings := &fakeBookingRepo{}
	items := &fakeItemRepo{items: map[int64]*domain.Item{}}
	users := &fakeUserRepo{users: map[int64]*domain.User{2: {ID: 2}}}

	uc := newTestUseCase(bookings, items, users, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), validRequest())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrItemNotFound)
	assert.Nil(t, bookings.created)
}

func TestCreateBooking_ItemUnavailable(t *testing.T) {
	items := &fakeItemRepo{items: map[int64]*domain.Item{
		10: {ID: 10, OwnerID: 1, Available: false},
	}}
	users := &fakeUserRepo{users: map[int64]*domain.User{2: {ID: 2}}}

	uc := newTestUseCase(&fakeBookingRepo{}, items, users, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrItemUnavailable)
}

func TestCreateBooking_BookerNotFound(t *testing.T) {
	items := &fakeItemRepo{items: map[int64]*domain.Item{
		10: {ID: 10, OwnerID: 1, Available: true},
	}}
	users := &fakeUserRepo{users: map[int64]*domain.User{}}

	uc := newTestUseCase(&fakeBookingRepo{}, items, users, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestCreateBooking_OwnItem(t *testing.T) {
	bookings := &fakeBookingRepo{}
	items := &fakeItemRepo{items: map[int64]*domain.Item{
		10: {ID: 10, OwnerID: 2, Available: true},
	}}
	users := &fakeUserRepo{users: map[int64]*domain.User{2: {ID: 2}}}
	tx := &fakeTxManager{}

	uc := newTestUseCase(bookings, items, users, tx)

	_, err := uc.Execute(context.Background(), validRequest())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOwnBooking)
	assert.Nil(t, bookings.created, "own booking must be rejected before any write")
	assert.Zero(t, tx.calls)
}

func TestCreateBooking_StartInPast(t *testing.T) {
	items := &fakeItemRepo{items: map[int64]*domain.Item{
		10: {ID: 10, OwnerID: 1, Available: true},
	}}
	users := &fakeUserRepo{users: map[int64]*domain.User{2: {ID: 2}}}

	uc := newTestUseCase(&fakeBookingRepo{}, items, users, &fakeTxManager{})

	req := validRequest()
	req.Start = testNow.Add(-time.Minute)

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestCreateBooking_EndNotAfterStart(t *testing.T) {
	items := &fakeItemRepo{items: map[int64]*domain.Item{
		10: {ID: 10, OwnerID: 1, Available: true},
	}}
	users := &fakeUserRepo{users: map[int64]*domain.User{2: {ID: 2}}}

	uc := newTestUseCase(&fakeBookingRepo{}, items, users, &fakeTxManager{})

	// Равные start и end отклоняются
	req := validRequest()
	req.End = req.Start

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestCreateBooking_InvalidIDs(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeItemRepo{}, &fakeUserRepo{}, &fakeTxManager{})

	req := validRequest()
	req.BookerID = 0

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
}
