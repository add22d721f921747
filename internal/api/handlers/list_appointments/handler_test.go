package list_appointments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barbeariapremium/booking-service/internal/domain"
	"github.com/barbeariapremium/booking-service/internal/service/appointments/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubService struct {
	gotLimit int
	list     *models.AppointmentList
	err      error
}

func (s *stubService) List(ctx context.Context, limit int) (*models.AppointmentList, error) {
	s.gotLimit = limit
	if s.err != nil {
		return nil, s.err
	}
	return s.list, nil
}

func emptyList() *models.AppointmentList {
	return &models.AppointmentList{Appointments: []models.AppointmentView{}}
}

func get(t *testing.T, h *Handler, url string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandleListsAppointments(t *testing.T) {
	svc := &stubService{list: &models.AppointmentList{
		Appointments: []models.AppointmentView{
			{
				ID:          "a1",
				ClientName:  "João Silva",
				ServiceID:   "corte",
				ServiceName: "Corte Masculino",
				StaffID:     "carlos",
				StaffName:   "Carlos Santos",
				Date:        time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
				Time:        "09:00",
				Status:      domain.StatusConfirmed,
				CreatedAt:   time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
			},
		},
		Total: 12,
	}}
	h := NewHandler(svc, nopLogger{})

	rec := get(t, h, "/api/v1/appointments")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, defaultLimit, svc.gotLimit)

	var resp AppointmentListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 12, resp.Total)
	require.Len(t, resp.Appointments, 1)
	assert.Equal(t, "a1", resp.Appointments[0].ID)
	assert.Equal(t, "2024-06-10", resp.Appointments[0].Date)
	assert.Equal(t, "09:00", resp.Appointments[0].Time)
	assert.Equal(t, "confirmed", resp.Appointments[0].Status)
}

func TestHandleCustomLimit(t *testing.T) {
	svc := &stubService{list: emptyList()}
	h := NewHandler(svc, nopLogger{})

	rec := get(t, h, "/api/v1/appointments?limit=3")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, svc.gotLimit)
}

func TestHandleZeroLimitMeansAll(t *testing.T) {
	svc := &stubService{list: emptyList()}
	h := NewHandler(svc, nopLogger{})

	rec := get(t, h, "/api/v1/appointments?limit=0")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, svc.gotLimit)
}

func TestHandleInvalidLimit(t *testing.T) {
	tests := []string{"dez", "-1", "1.5"}

	for _, limit := range tests {
		t.Run(limit, func(t *testing.T) {
			h := NewHandler(&stubService{list: emptyList()}, nopLogger{})

			rec := get(t, h, "/api/v1/appointments?limit="+limit)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandleServiceError(t *testing.T) {
	h := NewHandler(&stubService{err: context.DeadlineExceeded}, nopLogger{})

	rec := get(t, h, "/api/v1/appointments")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
