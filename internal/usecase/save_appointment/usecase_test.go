package save_appointment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleBoard/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-ScheduleBoard/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-ScheduleBoard/pkg/ptr"
)

type stubRepo struct {
	stored    map[string]domain.Appointment
	created   []*domain.Appointment
	updates   map[string]domain.AppointmentUpdate
	createErr error
}

func newStubRepo(stored ...domain.Appointment) *stubRepo {
	r := &stubRepo{stored: map[string]domain.Appointment{}, updates: map[string]domain.AppointmentUpdate{}}
	for _, a := range stored {
		r.stored[a.ID] = a
	}
	return r
}

func (r *stubRepo) GetByID(_ context.Context, id string) (*domain.Appointment, error) {
	a, ok := r.stored[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return &a, nil
}

func (r *stubRepo) Create(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	a.ID = "generated-1"
	r.created = append(r.created, a)
	return a, nil
}

func (r *stubRepo) Update(_ context.Context, id string, upd domain.AppointmentUpdate) error {
	r.updates[id] = upd
	return nil
}

type stubServices struct{}

func (stubServices) ListServices(context.Context) ([]domain.ServiceOffering, error) {
	return []domain.ServiceOffering{
		{ID: "cut", Name: ptr.Ptr("Haircut"), DurationMinutes: ptr.Ptr(45.0), Price: ptr.Ptr(12000.0)},
		{ID: "color", Name: ptr.Ptr("Color"), DurationMinutes: ptr.Ptr(90.0), Price: ptr.Ptr(30000.0)},
	}, nil
}

type stubMetrics struct {
	ops    []string
	failed int
}

func (m *stubMetrics) ObserveAppointmentSave(operation string, err error) {
	m.ops = append(m.ops, operation)
	if err != nil {
		m.failed++
	}
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newUseCase(repo *stubRepo, m *stubMetrics) *UseCase {
	return NewUseCase(repo, stubServices{}, "Appointment", m, nopLogger{})
}

func TestExecute_CreateDerivesEndAndPrice(t *testing.T) {
	repo := newStubRepo()
	m := &stubMetrics{}
	uc := newUseCase(repo, m)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:       ptr.Ptr("2025-10-15"),
		StartTime:  ptr.Ptr("09:30"),
		EmployeeID: ptr.Ptr("emp-1"),
		ServiceIDs: []string{"cut", "color"},
	})
	require.NoError(t, err)

	assert.True(t, resp.Created)
	p := resp.Payload
	assert.Equal(t, ptr.Ptr("generated-1"), p.ID)
	assert.Equal(t, "Appointment", p.Title)
	assert.Equal(t, "2025-10-15 09:30", p.StartTime)
	assert.Equal(t, "2025-10-15 11:45", p.EndTime)
	assert.Equal(t, ptr.Ptr(42000.0), p.Price)
	assert.Equal(t, "booked", p.Status)

	require.Len(t, repo.created, 1)
	assert.Equal(t, ptr.Ptr("emp-1"), repo.created[0].ResourceID)
	assert.Equal(t, []string{"cut", "color"}, repo.created[0].ServiceIDs)
	assert.Equal(t, []string{"create"}, m.ops)
	assert.Zero(t, m.failed)
}

func TestExecute_CreateHonorsManualFields(t *testing.T) {
	repo := newStubRepo()
	uc := newUseCase(repo, &stubMetrics{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:       ptr.Ptr("2025-10-15"),
		StartTime:  ptr.Ptr("09:30"),
		ServiceIDs: []string{"cut", "color"},
		EndTime:    ptr.Ptr("12:00"),
		Price:      ptr.Ptr(9000.0),
		Title:      ptr.Ptr("Wedding prep"),
	})
	require.NoError(t, err)

	assert.Equal(t, "2025-10-15 12:00", resp.Payload.EndTime)
	assert.Equal(t, ptr.Ptr(9000.0), resp.Payload.Price)
	assert.Equal(t, "Wedding prep", resp.Payload.Title)
	assert.Nil(t, resp.Payload.EmployeeID)
}

func TestExecute_CreateInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		req  Request
	}{
		{name: "missing date", req: Request{StartTime: ptr.Ptr("09:00")}},
		{name: "missing start", req: Request{Date: ptr.Ptr("2025-10-15")}},
		{name: "bad start", req: Request{Date: ptr.Ptr("2025-10-15"), StartTime: ptr.Ptr("9am")}},
		{name: "bad date", req: Request{Date: ptr.Ptr("2025/10/15"), StartTime: ptr.Ptr("09:00")}},
		{name: "bad status", req: Request{Date: ptr.Ptr("2025-10-15"), StartTime: ptr.Ptr("09:00"), Status: ptr.Ptr("lost")}},
		{name: "bad end", req: Request{Date: ptr.Ptr("2025-10-15"), StartTime: ptr.Ptr("09:00"), EndTime: ptr.Ptr("25:00")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newStubRepo()
			m := &stubMetrics{}
			uc := newUseCase(repo, m)

			_, err := uc.Execute(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Empty(t, repo.created)
			assert.Equal(t, 1, m.failed)
		})
	}
}

func TestExecute_CreateRepositoryError(t *testing.T) {
	repo := newStubRepo()
	repo.createErr = errors.New("insert failed")
	uc := newUseCase(repo, &stubMetrics{})

	_, err := uc.Execute(context.Background(), &Request{Date: ptr.Ptr("2025-10-15"), StartTime: ptr.Ptr("09:00")})
	assert.ErrorIs(t, err, ErrInternal)
}

func storedAppointment() domain.Appointment {
	return domain.Appointment{
		ID:         "a-1",
		Title:      "Cut",
		StartTime:  "2025-10-15 09:30",
		EndTime:    "2025-10-15 10:15",
		ResourceID: ptr.Ptr("emp-1"),
		ServiceIDs: []string{"cut"},
		Status:     domain.StatusBooked,
		Price:      ptr.Ptr(12000.0),
	}
}

func TestExecute_UpdateUnchangedIsNoop(t *testing.T) {
	repo := newStubRepo(storedAppointment())
	m := &stubMetrics{}
	uc := newUseCase(repo, m)

	resp, err := uc.Execute(context.Background(), &Request{AppointmentID: ptr.Ptr("a-1")})
	require.NoError(t, err)

	assert.False(t, resp.Created)
	assert.Equal(t, "2025-10-15 09:30", resp.Payload.StartTime)
	assert.Equal(t, "2025-10-15 10:15", resp.Payload.EndTime)
	assert.Empty(t, repo.updates)
	assert.Equal(t, []string{"update"}, m.ops)
}

func TestExecute_UpdateOnlyChangedColumns(t *testing.T) {
	repo := newStubRepo(storedAppointment())
	uc := newUseCase(repo, &stubMetrics{})

	resp, err := uc.Execute(context.Background(), &Request{
		AppointmentID: ptr.Ptr("a-1"),
		ServiceIDs:    []string{"cut", "color"},
	})
	require.NoError(t, err)

	assert.Equal(t, "2025-10-15 11:45", resp.Payload.EndTime)
	assert.Equal(t, ptr.Ptr(12000.0), resp.Payload.Price, "stored price is kept")

	upd, ok := repo.updates["a-1"]
	require.True(t, ok)
	assert.Equal(t, ptr.Ptr("2025-10-15 11:45"), upd.EndTime)
	assert.Equal(t, []string{"cut", "color"}, upd.ServiceIDs)
	assert.Nil(t, upd.Title)
	assert.Nil(t, upd.StartTime)
	assert.Nil(t, upd.Price)
	assert.False(t, upd.ClearPrice)
	assert.Nil(t, upd.ResourceID)
}

func TestExecute_UpdateMoveAndUnassign(t *testing.T) {
	repo := newStubRepo(storedAppointment())
	uc := newUseCase(repo, &stubMetrics{})

	_, err := uc.Execute(context.Background(), &Request{
		AppointmentID: ptr.Ptr("a-1"),
		Date:          ptr.Ptr("2025-10-16"),
		StartTime:     ptr.Ptr("14:00"),
		EmployeeID:    ptr.Ptr(""),
		ClearPrice:    true,
	})
	require.NoError(t, err)

	upd := repo.updates["a-1"]
	assert.Equal(t, ptr.Ptr("2025-10-16 14:00"), upd.StartTime)
	assert.Equal(t, ptr.Ptr("2025-10-16 14:45"), upd.EndTime)
	assert.Equal(t, ptr.Ptr(""), upd.ResourceID)
	assert.True(t, upd.ClearPrice)
}

func TestExecute_UpdateNotFound(t *testing.T) {
	uc := newUseCase(newStubRepo(), &stubMetrics{})

	_, err := uc.Execute(context.Background(), &Request{AppointmentID: ptr.Ptr("missing")})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
