package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/devrolin/ems-backend-go/internal/domain/attendance"
	"github.com/devrolin/ems-backend-go/internal/domain/employee"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAttendanceService returns canned responses so the tests exercise only
// routing and status code mapping.
type stubAttendanceService struct {
	checkInResult  attendance.AttendanceResponse
	checkInErr     error
	checkOutResult attendance.AttendanceResponse
	checkOutErr    error
}

func (s *stubAttendanceService) CheckIn(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error) {
	return s.checkInResult, s.checkInErr
}

func (s *stubAttendanceService) CheckOut(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error) {
	return s.checkOutResult, s.checkOutErr
}

func (s *stubAttendanceService) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	return attendance.ListAttendanceResponse{Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *stubAttendanceService) UpdateAttendance(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
}

func (s *stubAttendanceService) DeleteAttendance(ctx context.Context, id string) error {
	return nil
}

func newAttendanceTestRouter(svc attendance.AttendanceService) *chi.Mux {
	handler := NewAttendanceHandler(svc)
	r := chi.NewRouter()
	r.Post("/attendance/checkin/{employeeID}", handler.CheckIn)
	r.Post("/attendance/checkout/{employeeID}", handler.CheckOut)
	r.Get("/attendance", handler.List)
	r.Put("/attendance/{id}", handler.Update)
	return r
}

func TestAttendanceHandler_CheckIn_Created(t *testing.T) {
	svc := &stubAttendanceService{
		checkInResult: attendance.AttendanceResponse{
			ID:         "att-1",
			EmployeeID: "emp-1",
			Status:     attendance.StatusPresent,
		},
	}
	router := newAttendanceTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/attendance/checkin/emp-1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
}

func TestAttendanceHandler_CheckIn_Conflict(t *testing.T) {
	svc := &stubAttendanceService{checkInErr: attendance.ErrAlreadyCheckedIn}
	router := newAttendanceTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/attendance/checkin/emp-1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAttendanceHandler_CheckIn_UnknownEmployee(t *testing.T) {
	svc := &stubAttendanceService{checkInErr: employee.ErrEmployeeNotFound}
	router := newAttendanceTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/attendance/checkin/ghost", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAttendanceHandler_CheckIn_Forbidden(t *testing.T) {
	svc := &stubAttendanceService{checkInErr: attendance.ErrUnauthorized}
	router := newAttendanceTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/attendance/checkin/emp-2", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAttendanceHandler_CheckOut_NotCheckedIn(t *testing.T) {
	svc := &stubAttendanceService{checkOutErr: attendance.ErrNotCheckedIn}
	router := newAttendanceTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/attendance/checkout/emp-1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAttendanceHandler_List_DefaultPagination(t *testing.T) {
	svc := &stubAttendanceService{}
	router := newAttendanceTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/attendance?page=abc&limit=-5", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Meta struct {
			Page  int `json:"page"`
			Limit int `json:"limit"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Meta.Page)
	assert.Equal(t, 20, body.Meta.Limit)
}

func TestAttendanceHandler_Update_InvalidBody(t *testing.T) {
	svc := &stubAttendanceService{}
	router := newAttendanceTestRouter(svc)

	req := httptest.NewRequest(http.MethodPut, "/attendance/att-1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
