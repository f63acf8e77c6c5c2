package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EvgeniyTomilov/shareit/internal/domain"
	userRepo "github.com/EvgeniyTomilov/shareit/internal/infra/storage/user"
	"github.com/EvgeniyTomilov/shareit/internal/service/users/models"
	"github.com/EvgeniyTomilov/shareit/pkg/ptr"
)

type fakeUserRepo struct {
	users     map[int64]*domain.User
	createErr error
	updateErr error
	updated   *domain.User
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	out := *user
	out.ID = 1
	return &out, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	out := *user
	return &out, nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]*domain.User, error) {
	var result []*domain.User
	for _, user := range f.users {
		result = append(result, user)
	}
	return result, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = user
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return userRepo.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestCreate_Success(t *testing.T) {
	repo := &fakeUserRepo{users: map[int64]*domain.User{}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateUserRequest{
		Name:  "alice",
		Email: "alice@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "alice@example.com", resp.Email)
}

func TestCreate_EmailTaken(t *testing.T) {
	repo := &fakeUserRepo{createErr: userRepo.ErrEmailTaken}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateUserRequest{
		Name:  "alice",
		Email: "taken@example.com",
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestCreate_MissingFields(t *testing.T) {
	svc := NewService(&fakeUserRepo{}, nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateUserRequest{Name: "alice"})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &fakeUserRepo{users: map[int64]*domain.User{}}
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetByID(context.Background(), 9)

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdate_PartialFields(t *testing.T) {
	repo := &fakeUserRepo{users: map[int64]*domain.User{
		1: {ID: 1, Name: "alice", Email: "alice@example.com"},
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Update(context.Background(), &models.UpdateUserRequest{
		UserID: 1,
		Email:  ptr.Ptr("new@example.com"),
	})

	require.NoError(t, err)
	assert.Equal(t, "new@example.com", resp.Email)
	assert.Equal(t, "alice", resp.Name, "absent fields stay unchanged")
}

func TestUpdate_EmailConflict(t *testing.T) {
	repo := &fakeUserRepo{
		users: map[int64]*domain.User{
			1: {ID: 1, Name: "alice", Email: "alice@example.com"},
		},
		updateErr: userRepo.ErrEmailTaken,
	}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Update(context.Background(), &models.UpdateUserRequest{UserID: 1, Email: ptr.Ptr("taken@example.com")})

	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestDelete_NotFound(t *testing.T) {
	repo := &fakeUserRepo{users: map[int64]*domain.User{}}
	svc := NewService(repo, nopLogger{})

	err := svc.Delete(context.Background(), 9)

	assert.ErrorIs(t, err, ErrUserNotFound)
}
