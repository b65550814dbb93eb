package preview_appointment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleBoard/internal/domain"
	"github.com/m04kA/SMC-ScheduleBoard/pkg/ptr"
	"github.com/m04kA/SMC-ScheduleBoard/pkg/types"
)

type stubServices struct {
	services []domain.ServiceOffering
	err      error
}

func (s stubServices) ListServices(context.Context) ([]domain.ServiceOffering, error) {
	return s.services, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func catalog() stubServices {
	return stubServices{services: []domain.ServiceOffering{
		{ID: "cut", Name: ptr.Ptr("Haircut"), DurationMinutes: ptr.Ptr(45.0), Price: ptr.Ptr(12000.0)},
		{ID: "color", Name: ptr.Ptr("Color"), DurationMinutes: ptr.Ptr(90.0), Price: ptr.Ptr(30000.0)},
	}}
}

func TestExecute(t *testing.T) {
	tests := []struct {
		name        string
		req         Request
		wantMinutes int
		wantPrice   float64
		wantEnd     types.TimeString
		wantNames   []string
	}{
		{
			name:        "two services",
			req:         Request{StartTime: "09:30", ServiceIDs: []string{"cut", "color"}},
			wantMinutes: 135,
			wantPrice:   42000,
			wantEnd:     "11:45",
			wantNames:   []string{"Haircut", "Color"},
		},
		{
			name:        "empty selection floors duration",
			req:         Request{StartTime: "10:00"},
			wantMinutes: 30,
			wantEnd:     "10:30",
			wantNames:   []string{},
		},
		{
			name:        "unknown ids skipped",
			req:         Request{StartTime: "10:00", ServiceIDs: []string{"nope", "cut"}},
			wantMinutes: 45,
			wantPrice:   12000,
			wantEnd:     "10:45",
			wantNames:   []string{"Haircut"},
		},
		{
			name:        "rolls past midnight",
			req:         Request{StartTime: "23:45", ServiceIDs: []string{"cut"}},
			wantMinutes: 45,
			wantPrice:   12000,
			wantEnd:     "00:30",
			wantNames:   []string{"Haircut"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(catalog(), nopLogger{})

			resp, err := uc.Execute(context.Background(), &tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantMinutes, resp.TotalMinutes)
			assert.Equal(t, tt.wantPrice, resp.TotalPrice)
			assert.Equal(t, tt.wantEnd, resp.EndTime)
			assert.Equal(t, tt.wantNames, resp.ServiceNames)
		})
	}
}

func TestExecute_InvalidStart(t *testing.T) {
	uc := NewUseCase(catalog(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{StartTime: "9.30"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepositoryError(t *testing.T) {
	uc := NewUseCase(stubServices{err: errors.New("db down")}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{StartTime: "09:00"})
	assert.ErrorIs(t, err, ErrInternal)
}
