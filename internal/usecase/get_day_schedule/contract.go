package get_day_schedule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleBoard/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	ListByDate(ctx context.Context, date string) ([]domain.Appointment, error)
}

// RosterRepository интерфейс справочников: сотрудники и услуги
type RosterRepository interface {
	ListEmployees(ctx context.Context) ([]domain.Resource, error)
	ListServices(ctx context.Context) ([]domain.ServiceOffering, error)
}

// Metrics фиксирует результат построения сетки
type Metrics interface {
	ObserveScheduleBuild(state string, indexed int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
