package preview_appointment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	previewAppointment "github.com/m04kA/SMC-ScheduleBoard/internal/usecase/preview_appointment"
)

type stubUseCase struct {
	got  *previewAppointment.Request
	resp *previewAppointment.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *previewAppointment.Request) (*previewAppointment.Response, error) {
	s.got = req
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle_OK(t *testing.T) {
	uc := &stubUseCase{resp: &previewAppointment.Response{
		TotalMinutes: 135,
		TotalPrice:   42000,
		EndTime:      "11:45",
		ServiceNames: []string{"Haircut", "Color"},
	}}
	h := NewHandler(uc, nopLogger{})

	body := `{"start_time":"09:30","service_ids":["cut","color"]}`
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/appointments/preview", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, &previewAppointment.Request{StartTime: "09:30", ServiceIDs: []string{"cut", "color"}}, uc.got)

	var resp PreviewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 135, resp.TotalMinutes)
	assert.Equal(t, 42000.0, resp.TotalPrice)
	assert.Equal(t, "11:45", resp.EndTime)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{name: "malformed body", body: `{"start_time":`, wantStatus: http.StatusBadRequest},
		{name: "invalid input", body: `{"start_time":"x"}`, err: previewAppointment.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "internal", body: `{"start_time":"09:00"}`, err: errors.New("db"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubUseCase{err: tt.err}, nopLogger{})

			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/appointments/preview", strings.NewReader(tt.body)))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
