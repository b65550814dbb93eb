package save_appointment

import (
	"context"

	"github.com/m04kA/SMC-ScheduleBoard/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error)
	Update(ctx context.Context, id string, upd domain.AppointmentUpdate) error
}

// ServiceRepository интерфейс каталога услуг
type ServiceRepository interface {
	ListServices(ctx context.Context) ([]domain.ServiceOffering, error)
}

// Metrics фиксирует попытки сохранения
type Metrics interface {
	ObserveAppointmentSave(operation string, err error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
