package preview_appointment

import (
	"context"

	"github.com/m04kA/SMC-ScheduleBoard/internal/domain"
)

// ServiceRepository интерфейс каталога услуг
type ServiceRepository interface {
	ListServices(ctx context.Context) ([]domain.ServiceOffering, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
