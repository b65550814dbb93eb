package preview_appointment

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ScheduleBoard/internal/pricing"
	"github.com/m04kA/SMC-ScheduleBoard/pkg/types"
)

// UseCase use case предварительного расчета длительности и цены
type UseCase struct {
	serviceRepo ServiceRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(serviceRepo ServiceRepository, logger Logger) *UseCase {
	return &UseCase{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// Execute суммирует выбранные услуги и выводит конец записи от StartTime
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	start, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		uc.logger.Warn("PreviewAppointment: invalid start time %q", req.StartTime)
		return nil, fmt.Errorf("%w: start_time: %v", ErrInvalidInput, err)
	}

	services, err := uc.serviceRepo.ListServices(ctx)
	if err != nil {
		uc.logger.Error("PreviewAppointment: failed to load services: %v", err)
		return nil, fmt.Errorf("%w: failed to load services: %v", ErrInternal, err)
	}

	catalog := pricing.NewCatalog(services)
	totals := catalog.Aggregate(req.ServiceIDs)

	end, err := pricing.DeriveEndTime(start.String(), totals.TotalMinutes)
	if err != nil {
		return nil, fmt.Errorf("%w: derive end time: %v", ErrInternal, err)
	}

	uc.logger.Info("PreviewAppointment: services=%d total_minutes=%d total_price=%v end=%s",
		len(req.ServiceIDs), totals.TotalMinutes, totals.TotalPrice, end)

	return &Response{
		TotalMinutes: totals.TotalMinutes,
		TotalPrice:   totals.TotalPrice,
		EndTime:      types.TimeString(end),
		ServiceNames: catalog.Names(req.ServiceIDs),
	}, nil
}
