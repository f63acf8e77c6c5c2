package items

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EvgeniyTomilov/shareit/internal/domain"
	itemRepo "github.com/EvgeniyTomilov/shareit/internal/infra/storage/item"
	requestRepo "github.com/EvgeniyTomilov/shareit/internal/infra/storage/request"
	userRepo "github.com/EvgeniyTomilov/shareit/internal/infra/storage/user"
	"github.com/EvgeniyTomilov/shareit/internal/service/items/models"
	"github.com/EvgeniyTomilov/shareit/pkg/ptr"
)

type fakeItemRepo struct {
	items   map[int64]*domain.Item
	updated *domain.Item
	deleted []int64
}

func (f *fakeItemRepo) Create(_ context.Context, item *domain.Item) (*domain.Item, error) {
	out := *item
	out.ID = 100
	return &out, nil
}

func (f *fakeItemRepo) GetByID(_ context.Context, id int64) (*domain.Item, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, itemRepo.ErrItemNotFound
	}
	out := *item
	return &out, nil
}

func (f *fakeItemRepo) ListByOwner(_ context.Context, ownerID int64) ([]*domain.Item, error) {
	var result []*domain.Item
	for _, item := range f.items {
		if item.OwnerID == ownerID {
			result = append(result, item)
		}
	}
	return result, nil
}

func (f *fakeItemRepo) Search(_ context.Context, _ string) ([]*domain.Item, error) {
	var result []*domain.Item
	for _, item := range f.items {
		if item.Available {
			result = append(result, item)
		}
	}
	return result, nil
}

func (f *fakeItemRepo) Update(_ context.Context, item *domain.Item) error {
	f.updated = item
	return nil
}

func (f *fakeItemRepo) Delete(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeBookingRepo struct {
	started []*domain.Booking
	coming  []*domain.Booking
	ended   []*domain.Booking
}

func (f *fakeBookingRepo) ListStartedBefore(_ context.Context, _ int64, _ time.Time) ([]*domain.Booking, error) {
	return f.started, nil
}

func (f *fakeBookingRepo) ListStartingAfter(_ context.Context, _ int64, _ time.Time) ([]*domain.Booking, error) {
	return f.coming, nil
}

func (f *fakeBookingRepo) ListEndedByBooker(_ context.Context, _ int64, _ time.Time) ([]*domain.Booking, error) {
	return f.ended, nil
}

type fakeCommentRepo struct {
	comments []*domain.Comment
	created  *domain.Comment
}

func (f *fakeCommentRepo) Create(_ context.Context, comment *domain.Comment) (*domain.Comment, error) {
	out := *comment
	out.ID = 50
	f.created = &out
	return &out, nil
}

func (f *fakeCommentRepo) ListByItem(_ context.Context, _ int64) ([]*domain.Comment, error) {
	return f.comments, nil
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

type fakeRequestRepo struct {
	requests map[int64]*domain.ItemRequest
}

func (f *fakeRequestRepo) GetByID(_ context.Context, id int64) (*domain.ItemRequest, error) {
	req, ok := f.requests[id]
	if !ok {
		return nil, requestRepo.ErrRequestNotFound
	}
	return req, nil
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

func newFixture() (*fakeItemRepo, *fakeBookingRepo, *fakeCommentRepo, *fakeUserRepo, *Service) {
	items := &fakeItemRepo{items: map[int64]*domain.Item{
		10: {ID: 10, OwnerID: 1, Name: "drill", Description: "power drill", Available: true},
	}}
	bookings := &fakeBookingRepo{}
	comments := &fakeCommentRepo{}
	users := &fakeUserRepo{users: map[int64]*domain.User{
		1: {ID: 1, Name: "bob"},
		2: {ID: 2, Name: "alice"},
	}}
	requests := &fakeRequestRepo{requests: map[int64]*domain.ItemRequest{}}

	svc := NewService(items, bookings, comments, users, requests, nopLogger{})
	svc.timeProvider = &fixedTime{now: testNow}
	return items, bookings, comments, users, svc
}

func booking(id int64, start time.Time, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:       id,
		ItemID:   10,
		BookerID: 2,
		Start:    start,
		End:      start.Add(time.Hour),
		Status:   status,
	}
}

func TestGetByID_OwnerSeesBookingProjection(t *testing.T) {
	_, bookings, _, _, svc := newFixture()

	// Выборки отсортированы по началу аренды по возрастанию
	bookings.started = []*domain.Booking{
		booking(1, testNow.Add(-72*time.Hour), domain.StatusApproved),
		booking(2, testNow.Add(-48*time.Hour), domain.StatusApproved),
		booking(3, testNow.Add(-24*time.Hour), domain.StatusRejected),
	}
	bookings.coming = []*domain.Booking{
		booking(4, testNow.Add(24*time.Hour), domain.StatusWaiting),
		booking(5, testNow.Add(48*time.Hour), domain.StatusApproved),
	}

	resp, err := svc.GetByID(context.Background(), 10, 1)

	require.NoError(t, err)
	// Последнее - подтвержденное с наибольшим началом, отклоненное не считается
	require.NotNil(t, resp.LastBooking)
	assert.Equal(t, int64(2), resp.LastBooking.ID)
	// Следующее - ближайшее подтвержденное, ожидающее не считается
	require.NotNil(t, resp.NextBooking)
	assert.Equal(t, int64(5), resp.NextBooking.ID)
}

func TestGetByID_NonOwnerGetsNoProjection(t *testing.T) {
	_, bookings, _, _, svc := newFixture()
	bookings.started = []*domain.Booking{booking(1, testNow.Add(-time.Hour), domain.StatusApproved)}
	bookings.coming = []*domain.Booking{booking(2, testNow.Add(time.Hour), domain.StatusApproved)}

	resp, err := svc.GetByID(context.Background(), 10, 2)

	require.NoError(t, err)
	assert.Nil(t, resp.LastBooking)
	assert.Nil(t, resp.NextBooking)
}

func TestGetByID_NoApprovedBookings(t *testing.T) {
	_, bookings, _, _, svc := newFixture()
	bookings.started = []*domain.Booking{booking(1, testNow.Add(-time.Hour), domain.StatusWaiting)}
	bookings.coming = []*domain.Booking{booking(2, testNow.Add(time.Hour), domain.StatusRejected)}

	resp, err := svc.GetByID(context.Background(), 10, 1)

	require.NoError(t, err)
	assert.Nil(t, resp.LastBooking)
	assert.Nil(t, resp.NextBooking)
}

func TestGetByID_CommentsIncludeAuthorNames(t *testing.T) {
	_, _, comments, _, svc := newFixture()
	comments.comments = []*domain.Comment{
		{ID: 1, ItemID: 10, AuthorID: 2, Text: "great drill", CreatedAt: testNow},
	}

	resp, err := svc.GetByID(context.Background(), 10, 2)

	require.NoError(t, err)
	require.Len(t, resp.Comments, 1)
	assert.Equal(t, "great drill", resp.Comments[0].Text)
	assert.Equal(t, "alice", resp.Comments[0].AuthorName)
}

func TestGetByID_NotFound(t *testing.T) {
	_, _, _, _, svc := newFixture()

	_, err := svc.GetByID(context.Background(), 99, 1)

	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestSearch_BlankTextReturnsEmpty(t *testing.T) {
	_, _, _, _, svc := newFixture()

	for _, text := range []string{"", "   "} {
		result, err := svc.Search(context.Background(), text)
		require.NoError(t, err)
		assert.Empty(t, result)
	}
}

func TestUpdate_OnlyOwner(t *testing.T) {
	items, _, _, _, svc := newFixture()

	_, err := svc.Update(context.Background(), &models.UpdateItemRequest{
		OwnerID: 2,
		ItemID:  10,
		Name:    ptr.Ptr("hammer"),
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Nil(t, items.updated)
}

func TestUpdate_PartialFields(t *testing.T) {
	items, _, _, _, svc := newFixture()

	resp, err := svc.Update(context.Background(), &models.UpdateItemRequest{
		OwnerID:   1,
		ItemID:    10,
		Available: ptr.Ptr(false),
	})

	require.NoError(t, err)
	assert.False(t, resp.Available)
	assert.Equal(t, "drill", resp.Name, "absent fields stay unchanged")
	require.NotNil(t, items.updated)
	assert.False(t, items.updated.Available)
}

func TestAddComment_RequiresFinishedBooking(t *testing.T) {
	_, bookings, comments, _, svc := newFixture()
	bookings.ended = nil

	_, err := svc.AddComment(context.Background(), &models.AddCommentRequest{
		AuthorID: 2,
		ItemID:   10,
		Text:     "nice",
	})

	assert.ErrorIs(t, err, ErrNoFinishedBooking)
	assert.Nil(t, comments.created)
}

func TestAddComment_FinishedBookingOfOtherItemDoesNotCount(t *testing.T) {
	_, bookings, _, _, svc := newFixture()
	other := booking(1, testNow.Add(-48*time.Hour), domain.StatusApproved)
	other.ItemID = 99
	bookings.ended = []*domain.Booking{other}

	_, err := svc.AddComment(context.Background(), &models.AddCommentRequest{
		AuthorID: 2,
		ItemID:   10,
		Text:     "nice",
	})

	assert.ErrorIs(t, err, ErrNoFinishedBooking)
}

func TestAddComment_Success(t *testing.T) {
	_, bookings, comments, _, svc := newFixture()
	bookings.ended = []*domain.Booking{booking(1, testNow.Add(-48*time.Hour), domain.StatusWaiting)}

	resp, err := svc.AddComment(context.Background(), &models.AddCommentRequest{
		AuthorID: 2,
		ItemID:   10,
		Text:     "nice",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(50), resp.ID)
	assert.Equal(t, "alice", resp.AuthorName)
	assert.Equal(t, testNow, resp.Created)
	require.NotNil(t, comments.created)
	assert.Equal(t, int64(10), comments.created.ItemID)
}

func TestAddComment_BlankText(t *testing.T) {
	_, _, _, _, svc := newFixture()

	_, err := svc.AddComment(context.Background(), &models.AddCommentRequest{
		AuthorID: 2,
		ItemID:   10,
		Text:     "   ",
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
