package get_day_schedule

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleBoard/internal/domain"
	"github.com/m04kA/SMC-ScheduleBoard/internal/scheduling"
	getDaySchedule "github.com/m04kA/SMC-ScheduleBoard/internal/usecase/get_day_schedule"
	"github.com/m04kA/SMC-ScheduleBoard/pkg/ptr"
)

type stubUseCase struct {
	got  *getDaySchedule.Request
	resp *getDaySchedule.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *getDaySchedule.Request) (*getDaySchedule.Response, error) {
	s.got = req
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func buildSchedule(t *testing.T) *scheduling.DaySchedule {
	t.Helper()
	day, err := scheduling.ParseDay("2025-10-15")
	require.NoError(t, err)

	s, err := scheduling.BuildDaySchedule(scheduling.DayInput{
		Date:      day,
		Grid:      scheduling.GridConfig{StartMinute: 540, EndMinute: 660, SlotMinutes: 30},
		Resources: []domain.Resource{{ID: "emp-1", ShortName: ptr.Ptr("Anya")}},
		Appointments: []domain.Appointment{
			{ID: "a-1", Title: "Cut", StartTime: "2025-10-15 09:30", EndTime: "2025-10-15 10:15", ResourceID: ptr.Ptr("emp-1"), Status: domain.StatusBooked},
			{ID: "a-2", Title: "Walk-in", StartTime: "2025-10-15 10:00", EndTime: "2025-10-15 10:30", Status: domain.StatusBooked},
		},
	})
	require.NoError(t, err)
	return s
}

func TestHandle_OK(t *testing.T) {
	uc := &stubUseCase{resp: &getDaySchedule.Response{Schedule: buildSchedule(t)}}
	h := NewHandler(uc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/schedule?date=2025-10-15&nav=next", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2025-10-15", uc.got.Date)
	assert.Equal(t, getDaySchedule.NavNext, uc.got.Nav)

	var body DayScheduleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ready", body.State)
	assert.Equal(t, []BucketResponse{
		{Minute: 540, Label: "09:00"},
		{Minute: 570, Label: "09:30"},
		{Minute: 600, Label: "10:00"},
		{Minute: 630, Label: "10:30"},
	}, body.Buckets)
	assert.Equal(t, "Anya", body.Resources[0].DisplayName)

	cell := body.Cells["emp-1|570"]
	require.Len(t, cell, 1)
	assert.Equal(t, "a-1", cell[0].ID)
	assert.Equal(t, 45, cell[0].DurationMinutes)
	assert.Equal(t, 2, cell[0].RowSpan)
	assert.Equal(t, []string{}, cell[0].ServiceIDs)

	require.Len(t, body.Unassigned, 1)
	assert.Nil(t, body.Unassigned[0].EmployeeID)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "bad date", err: getDaySchedule.ErrInvalidDate, wantStatus: http.StatusBadRequest},
		{name: "bad nav", err: getDaySchedule.ErrInvalidNavigation, wantStatus: http.StatusBadRequest},
		{name: "internal", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubUseCase{err: tt.err}, nopLogger{})

			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/schedule?date=x", nil))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
