package approve_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EvgeniyTomilov/shareit/internal/api/middleware"
	approveBooking "github.com/EvgeniyTomilov/shareit/internal/usecase/approve_booking"
)

type fakeUseCase struct {
	lastReq *approveBooking.Request
	resp    *approveBooking.Response
	err     error
}

func (f *fakeUseCase) Execute(_ context.Context, req *approveBooking.Request) (*approveBooking.Response, error) {
	f.lastReq = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRouter(uc *fakeUseCase) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/bookings/{bookingId}", NewHandler(uc, nopLogger{}).Handle).Methods(http.MethodPatch)
	return r
}

func TestHandle_Approve(t *testing.T) {
	start := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{resp: &approveBooking.Response{
		ID:     5,
		Start:  start,
		End:    start.Add(time.Hour),
		Status: "APPROVED",
	}}

	req := httptest.NewRequest(http.MethodPatch, "/bookings/5?approved=true", nil)
	req.Header.Set(middleware.HeaderUserID, "1")
	rec := httptest.NewRecorder()

	newRouter(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.lastReq)
	assert.Equal(t, int64(1), uc.lastReq.OwnerID)
	assert.Equal(t, int64(5), uc.lastReq.BookingID)
	assert.True(t, uc.lastReq.Approved)
	assert.Contains(t, rec.Body.String(), `"status":"APPROVED"`)
}

func TestHandle_MissingUserHeader(t *testing.T) {
	uc := &fakeUseCase{}

	req := httptest.NewRequest(http.MethodPatch, "/bookings/5?approved=true", nil)
	rec := httptest.NewRecorder()

	newRouter(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, uc.lastReq)
}

func TestHandle_InvalidApprovedParam(t *testing.T) {
	uc := &fakeUseCase{}

	req := httptest.NewRequest(http.MethodPatch, "/bookings/5?approved=maybe", nil)
	req.Header.Set(middleware.HeaderUserID, "1")
	rec := httptest.NewRecorder()

	newRouter(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_SecondaryApproval(t *testing.T) {
	uc := &fakeUseCase{err: approveBooking.ErrSecondaryApproval}

	req := httptest.NewRequest(http.MethodPatch, "/bookings/5?approved=false", nil)
	req.Header.Set(middleware.HeaderUserID, "1")
	rec := httptest.NewRecorder()

	newRouter(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_NotFound(t *testing.T) {
	uc := &fakeUseCase{err: approveBooking.ErrBookingNotFound}

	req := httptest.NewRequest(http.MethodPatch, "/bookings/5?approved=true", nil)
	req.Header.Set(middleware.HeaderUserID, "7")
	rec := httptest.NewRecorder()

	newRouter(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
