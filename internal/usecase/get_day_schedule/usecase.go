package get_day_schedule

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ScheduleBoard/internal/domain"
	"github.com/m04kA/SMC-ScheduleBoard/internal/pricing"
	"github.com/m04kA/SMC-ScheduleBoard/internal/scheduling"
)

// UseCase use case построения сетки дня
type UseCase struct {
	appointmentRepo AppointmentRepository
	rosterRepo      RosterRepository
	grid            scheduling.GridConfig
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	rosterRepo RosterRepository,
	grid scheduling.GridConfig,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		rosterRepo:      rosterRepo,
		grid:            grid,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute загружает сотрудников, каталог и записи дня и строит сетку.
// Ошибка загрузки не прерывает запрос: возвращается сетка в состоянии error с пустыми данными.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	day, err := uc.resolveDay(req)
	if err != nil {
		uc.logger.Warn("GetDaySchedule: %v", err)
		return nil, err
	}

	uc.logger.Info("GetDaySchedule: date=%s", day)

	in := scheduling.DayInput{
		Date: day,
		Grid: uc.grid,
	}

	resources, services, appointments, err := uc.load(ctx, day)
	if err != nil {
		uc.logger.Error("GetDaySchedule: failed to load data for %s: %v", day, err)
		in.LoadErr = errLoadFailed
	} else {
		in.Resources = resources
		in.Appointments = withServiceNames(appointments, pricing.NewCatalog(services))
	}

	schedule, err := scheduling.BuildDaySchedule(in)
	if err != nil {
		uc.logger.Error("GetDaySchedule: failed to build grid: %v", err)
		return nil, fmt.Errorf("%w: build grid: %v", ErrInternal, err)
	}

	uc.metrics.ObserveScheduleBuild(string(schedule.State), schedule.IndexedCount())
	if schedule.OutsideWindow > 0 {
		uc.logger.Warn("GetDaySchedule: %d appointment(s) on %s start outside the business window",
			schedule.OutsideWindow, day)
	}

	uc.logger.Info("GetDaySchedule: date=%s state=%s resources=%d indexed=%d unassigned=%d",
		day, schedule.State, len(schedule.Resources), schedule.IndexedCount(), len(schedule.Unassigned))

	return &Response{Schedule: schedule}, nil
}

func (uc *UseCase) resolveDay(req *Request) (scheduling.Day, error) {
	now := uc.timeProvider.Now()

	day := scheduling.Today(now)
	if req.Date != "" {
		parsed, err := day.SetDate(req.Date)
		if err != nil {
			return scheduling.Day{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
		}
		day = parsed
	}

	switch req.Nav {
	case NavNone:
	case NavPrev:
		day = day.ShiftDay(-1)
	case NavNext:
		day = day.ShiftDay(1)
	case NavToday:
		day = day.GoToToday(now)
	default:
		return scheduling.Day{}, fmt.Errorf("%w: %q", ErrInvalidNavigation, req.Nav)
	}

	return day, nil
}

func (uc *UseCase) load(ctx context.Context, day scheduling.Day) (
	[]domain.Resource, []domain.ServiceOffering, []domain.Appointment, error,
) {
	resources, err := uc.rosterRepo.ListEmployees(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("list employees: %w", err)
	}

	services, err := uc.rosterRepo.ListServices(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("list services: %w", err)
	}

	appointments, err := uc.appointmentRepo.ListByDate(ctx, day.String())
	if err != nil {
		return nil, nil, nil, fmt.Errorf("list appointments: %w", err)
	}

	return resources, services, appointments, nil
}

// withServiceNames заполняет названия услуг, если хранилище их не вернуло
func withServiceNames(appointments []domain.Appointment, catalog *pricing.Catalog) []domain.Appointment {
	out := make([]domain.Appointment, len(appointments))
	for i, a := range appointments {
		if len(a.ServiceNames) == 0 && len(a.ServiceIDs) > 0 {
			a.ServiceNames = catalog.Names(a.ServiceIDs)
		}
		out[i] = a
	}
	return out
}
