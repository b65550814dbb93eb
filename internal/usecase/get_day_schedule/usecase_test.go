package get_day_schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleBoard/internal/domain"
	"github.com/m04kA/SMC-ScheduleBoard/internal/scheduling"
	"github.com/m04kA/SMC-ScheduleBoard/pkg/ptr"
)

type stubAppointments struct {
	byDate    map[string][]domain.Appointment
	err       error
	requested []string
}

func (s *stubAppointments) ListByDate(_ context.Context, date string) ([]domain.Appointment, error) {
	s.requested = append(s.requested, date)
	if s.err != nil {
		return nil, s.err
	}
	return s.byDate[date], nil
}

type stubRoster struct {
	resources   []domain.Resource
	services    []domain.ServiceOffering
	employeeErr error
}

func (s *stubRoster) ListEmployees(context.Context) ([]domain.Resource, error) {
	return s.resources, s.employeeErr
}

func (s *stubRoster) ListServices(context.Context) ([]domain.ServiceOffering, error) {
	return s.services, nil
}

type stubMetrics struct {
	states  []string
	indexed []int
}

func (m *stubMetrics) ObserveScheduleBuild(state string, indexed int) {
	m.states = append(m.states, state)
	m.indexed = append(m.indexed, indexed)
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newUseCase(appts *stubAppointments, roster *stubRoster, m *stubMetrics) *UseCase {
	uc := NewUseCase(appts, roster, scheduling.DefaultGridConfig(), m, nopLogger{})
	uc.timeProvider = fixedClock{now: time.Date(2025, 10, 15, 14, 0, 0, 0, time.UTC)}
	return uc
}

func testRoster() *stubRoster {
	return &stubRoster{
		resources: []domain.Resource{
			{ID: "emp-1", ShortName: ptr.Ptr("Anya")},
			{ID: "emp-2", FirstName: ptr.Ptr("Boris")},
		},
		services: []domain.ServiceOffering{
			{ID: "cut", Name: ptr.Ptr("Haircut"), DurationMinutes: ptr.Ptr(45.0), Price: ptr.Ptr(12000.0)},
		},
	}
}

func TestExecute_Ready(t *testing.T) {
	appts := &stubAppointments{byDate: map[string][]domain.Appointment{
		"2025-10-15": {
			{ID: "a-1", StartTime: "2025-10-15 09:30", EndTime: "2025-10-15 10:15", ResourceID: ptr.Ptr("emp-1"), ServiceIDs: []string{"cut"}},
			{ID: "a-2", StartTime: "2025-10-15 11:00", EndTime: "2025-10-15 11:30"},
		},
	}}
	m := &stubMetrics{}
	uc := newUseCase(appts, testRoster(), m)

	resp, err := uc.Execute(context.Background(), &Request{Date: "2025-10-15"})
	require.NoError(t, err)

	s := resp.Schedule
	assert.Equal(t, scheduling.StateReady, s.State)
	assert.Equal(t, "2025-10-15", s.Date.String())
	require.Len(t, s.Resources, 2)
	assert.Equal(t, "Anya", s.Resources[0].DisplayName)
	assert.Len(t, s.Buckets, 24)

	cell := s.Lookup("emp-1", 570)
	require.Len(t, cell, 1)
	assert.Equal(t, []string{"Haircut"}, cell[0].Appointment.ServiceNames)
	assert.Equal(t, 2, cell[0].RowSpan)

	require.Len(t, s.Unassigned, 1)
	assert.Equal(t, "a-2", s.Unassigned[0].ID)

	assert.Equal(t, []string{"ready"}, m.states)
	assert.Equal(t, []int{1}, m.indexed)
}

func TestExecute_Navigation(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want string
	}{
		{name: "empty date is today", req: Request{}, want: "2025-10-15"},
		{name: "next", req: Request{Date: "2025-10-15", Nav: NavNext}, want: "2025-10-16"},
		{name: "prev across month", req: Request{Date: "2025-10-01", Nav: NavPrev}, want: "2025-09-30"},
		{name: "today ignores date", req: Request{Date: "2024-02-29", Nav: NavToday}, want: "2025-10-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appts := &stubAppointments{}
			uc := newUseCase(appts, testRoster(), &stubMetrics{})

			resp, err := uc.Execute(context.Background(), &tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.Schedule.Date.String())
			assert.Equal(t, []string{tt.want}, appts.requested)
		})
	}
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newUseCase(&stubAppointments{}, testRoster(), &stubMetrics{})

	_, err := uc.Execute(context.Background(), &Request{Date: "15/10/2025"})
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = uc.Execute(context.Background(), &Request{Nav: "tomorrow"})
	assert.ErrorIs(t, err, ErrInvalidNavigation)
}

func TestExecute_LoadFailureYieldsErrorState(t *testing.T) {
	appts := &stubAppointments{err: errors.New("connection reset")}
	m := &stubMetrics{}
	uc := newUseCase(appts, testRoster(), m)

	resp, err := uc.Execute(context.Background(), &Request{Date: "2025-10-15"})
	require.NoError(t, err)

	s := resp.Schedule
	assert.Equal(t, scheduling.StateError, s.State)
	assert.NotEmpty(t, s.Error)
	assert.NotContains(t, s.Error, "connection reset")
	assert.Empty(t, s.Resources)
	assert.Empty(t, s.Cells)
	assert.Empty(t, s.Unassigned)
	assert.Equal(t, []string{"error"}, m.states)
}

func TestExecute_NoEmployees(t *testing.T) {
	roster := &stubRoster{}
	uc := newUseCase(&stubAppointments{}, roster, &stubMetrics{})

	resp, err := uc.Execute(context.Background(), &Request{Date: "2025-10-15"})
	require.NoError(t, err)
	assert.Equal(t, scheduling.StateEmpty, resp.Schedule.State)
	assert.Len(t, resp.Schedule.Buckets, 24)
}

func TestExecute_InvalidGrid(t *testing.T) {
	uc := NewUseCase(&stubAppointments{}, testRoster(), scheduling.GridConfig{StartMinute: 600, EndMinute: 600, SlotMinutes: 30}, &stubMetrics{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Date: "2025-10-15"})
	assert.ErrorIs(t, err, ErrInternal)
}
