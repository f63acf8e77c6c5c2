package requests

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EvgeniyTomilov/shareit/internal/domain"
	requestRepo "github.com/EvgeniyTomilov/shareit/internal/infra/storage/request"
	userRepo "github.com/EvgeniyTomilov/shareit/internal/infra/storage/user"
	"github.com/EvgeniyTomilov/shareit/internal/service/requests/models"
)

type fakeRequestRepo struct {
	requests map[int64]*domain.ItemRequest
	others   []*domain.ItemRequest
	lastPage int
	lastSize int
	created  *domain.ItemRequest
}

func (f *fakeRequestRepo) Create(_ context.Context, req *domain.ItemRequest) (*domain.ItemRequest, error) {
	out := *req
	out.ID = 7
	f.created = &out
	return &out, nil
}

func (f *fakeRequestRepo) GetByID(_ context.Context, id int64) (*domain.ItemRequest, error) {
	req, ok := f.requests[id]
	if !ok {
		return nil, requestRepo.ErrRequestNotFound
	}
	return req, nil
}

func (f *fakeRequestRepo) ListByRequester(_ context.Context, requesterID int64) ([]*domain.ItemRequest, error) {
	var result []*domain.ItemRequest
	for _, req := range f.requests {
		if req.RequesterID == requesterID {
			result = append(result, req)
		}
	}
	return result, nil
}

func (f *fakeRequestRepo) ListOthers(_ context.Context, _ int64, page, size int) ([]*domain.ItemRequest, error) {
	f.lastPage = page
	f.lastSize = size
	return f.others, nil
}

type fakeItemRepo struct {
	byRequest map[int64][]*domain.Item
}

func (f *fakeItemRepo) ListByRequest(_ context.Context, requestID int64) ([]*domain.Item, error) {
	return f.byRequest[requestID], nil
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

func newFixture() (*fakeRequestRepo, *fakeItemRepo, *Service) {
	reqs := &fakeRequestRepo{requests: map[int64]*domain.ItemRequest{
		7: {ID: 7, RequesterID: 2, Description: "need a drill", CreatedAt: testNow},
	}}
	items := &fakeItemRepo{byRequest: map[int64][]*domain.Item{}}
	users := &fakeUserRepo{users: map[int64]*domain.User{
		1: {ID: 1, Name: "bob"},
		2: {ID: 2, Name: "alice"},
	}}

	svc := NewService(reqs, items, users, nopLogger{})
	svc.timeProvider = &fixedTime{now: testNow}
	return reqs, items, svc
}

func TestCreate_Success(t *testing.T) {
	reqs, _, svc := newFixture()

	resp, err := svc.Create(context.Background(), &models.CreateRequestRequest{
		RequesterID: 2,
		Description: "need a ladder",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, testNow, resp.Created)
	require.NotNil(t, reqs.created)
	assert.Equal(t, testNow, reqs.created.CreatedAt)
}

func TestCreate_BlankDescription(t *testing.T) {
	_, _, svc := newFixture()

	_, err := svc.Create(context.Background(), &models.CreateRequestRequest{
		RequesterID: 2,
		Description: "  ",
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreate_UnknownUser(t *testing.T) {
	_, _, svc := newFixture()

	_, err := svc.Create(context.Background(), &models.CreateRequestRequest{
		RequesterID: 99,
		Description: "need a drill",
	})

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetByID_WithAnswers(t *testing.T) {
	_, items, svc := newFixture()
	requestID := int64(7)
	items.byRequest[7] = []*domain.Item{
		{ID: 10, OwnerID: 1, Name: "drill", Available: true, RequestID: &requestID},
	}

	resp, err := svc.GetByID(context.Background(), 7, 1)

	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, int64(10), resp.Items[0].ID)
	assert.Equal(t, int64(7), resp.Items[0].RequestID)
}

func TestGetByID_NotFound(t *testing.T) {
	_, _, svc := newFixture()

	_, err := svc.GetByID(context.Background(), 99, 1)

	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestListOthers_PageArithmetic(t *testing.T) {
	reqs, _, svc := newFixture()

	_, err := svc.ListOthers(context.Background(), &models.ListOthersRequest{
		UserID: 1,
		From:   25,
		Size:   10,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, reqs.lastPage)
	assert.Equal(t, 10, reqs.lastSize)
}

func TestListOthers_InvalidPage(t *testing.T) {
	_, _, svc := newFixture()

	_, err := svc.ListOthers(context.Background(), &models.ListOthersRequest{
		UserID: 1,
		From:   -1,
		Size:   10,
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListOwn(t *testing.T) {
	_, _, svc := newFixture()

	resp, err := svc.ListOwn(context.Background(), 2)

	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "need a drill", resp[0].Description)
}
