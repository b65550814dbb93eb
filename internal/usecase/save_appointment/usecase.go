package save_appointment

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/m04kA/SMC-ScheduleBoard/internal/domain"
	"github.com/m04kA/SMC-ScheduleBoard/internal/draft"
	appointmentRepo "github.com/m04kA/SMC-ScheduleBoard/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-ScheduleBoard/internal/pricing"
	"github.com/m04kA/SMC-ScheduleBoard/pkg/ptr"
	"github.com/m04kA/SMC-ScheduleBoard/pkg/types"
)

// UseCase use case сохранения записи через сессию редактирования
type UseCase struct {
	appointmentRepo AppointmentRepository
	serviceRepo     ServiceRepository
	defaultTitle    string
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	defaultTitle string,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		serviceRepo:     serviceRepo,
		defaultTitle:    defaultTitle,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute проигрывает запрос через сессию редактирования и сохраняет результат.
// Конец записи и цена пересчитываются по услугам, если не переданы явно.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.AppointmentID == nil {
		resp, err := uc.create(ctx, req)
		uc.metrics.ObserveAppointmentSave(operationCreate, err)
		return resp, err
	}

	resp, err := uc.update(ctx, *req.AppointmentID, req)
	uc.metrics.ObserveAppointmentSave(operationUpdate, err)
	return resp, err
}

func (uc *UseCase) create(ctx context.Context, req *Request) (*Response, error) {
	if req.Date == nil || req.StartTime == nil {
		uc.logger.Warn("SaveAppointment: create without date or start_time")
		return nil, fmt.Errorf("%w: date and start_time are required", ErrInvalidInput)
	}

	start, err := types.NewTimeStringFromString(*req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: start_time: %v", ErrInvalidInput, err)
	}
	startMinute, err := start.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: start_time: %v", ErrInvalidInput, err)
	}

	catalog, err := uc.catalog(ctx)
	if err != nil {
		return nil, err
	}

	employeeID := ""
	if req.EmployeeID != nil {
		employeeID = *req.EmployeeID
	}

	session, err := draft.NewSession(catalog, *req.Date, employeeID, startMinute, draft.WithDefaultTitle(uc.defaultTitle))
	if err != nil {
		uc.logger.Warn("SaveAppointment: failed to open draft: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	payload, err := uc.replay(session, req)
	if err != nil {
		return nil, err
	}

	created, err := uc.appointmentRepo.Create(ctx, toAppointment(payload))
	if err != nil {
		uc.logger.Error("SaveAppointment: failed to create appointment: %v", err)
		return nil, fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
	}

	payload.ID = &created.ID
	uc.logger.Info("SaveAppointment: created id=%s start=%s end=%s services=%d",
		created.ID, payload.StartTime, payload.EndTime, len(payload.ServiceIDs))

	return &Response{Created: true, Payload: payload}, nil
}

func (uc *UseCase) update(ctx context.Context, id string, req *Request) (*Response, error) {
	existing, err := uc.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			uc.logger.Warn("SaveAppointment: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("SaveAppointment: failed to get appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	catalog, err := uc.catalog(ctx)
	if err != nil {
		return nil, err
	}

	session, err := draft.OpenSession(catalog, *existing, draft.WithDefaultTitle(uc.defaultTitle))
	if err != nil {
		uc.logger.Error("SaveAppointment: stored appointment id=%s is not editable: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	payload, err := uc.replay(session, req)
	if err != nil {
		return nil, err
	}

	upd := diff(existing, payload, req.ServiceIDs != nil)
	if upd.IsEmpty() {
		uc.logger.Info("SaveAppointment: id=%s unchanged", id)
		return &Response{Payload: payload}, nil
	}

	if err := uc.appointmentRepo.Update(ctx, id, upd); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			uc.logger.Warn("SaveAppointment: appointment id=%s disappeared during update", id)
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("SaveAppointment: failed to update appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: failed to update appointment: %v", ErrInternal, err)
	}

	uc.logger.Info("SaveAppointment: updated id=%s start=%s end=%s", id, payload.StartTime, payload.EndTime)
	return &Response{Payload: payload}, nil
}

func (uc *UseCase) catalog(ctx context.Context) (*pricing.Catalog, error) {
	services, err := uc.serviceRepo.ListServices(ctx)
	if err != nil {
		uc.logger.Error("SaveAppointment: failed to load services: %v", err)
		return nil, fmt.Errorf("%w: failed to load services: %v", ErrInternal, err)
	}
	return pricing.NewCatalog(services), nil
}

// replay применяет переданные поля к сессии в том порядке, в котором их менял бы пользователь:
// сначала услуги и начало, затем ручные правки конца и цены
func (uc *UseCase) replay(s *draft.Session, req *Request) (*draft.SavePayload, error) {
	steps := make([]func() error, 0, 12)

	if req.Date != nil && req.AppointmentID != nil {
		steps = append(steps, func() error { return s.SetDate(*req.Date) })
	}
	if req.EmployeeID != nil && req.AppointmentID != nil {
		steps = append(steps, func() error { return s.SetResource(*req.EmployeeID) })
	}
	if req.ServiceIDs != nil {
		steps = append(steps, func() error { return s.SetServices(req.ServiceIDs) })
	}
	if req.StartTime != nil && req.AppointmentID != nil {
		steps = append(steps, func() error { return s.SetStartTime(*req.StartTime) })
	}
	if req.EndTime != nil {
		steps = append(steps, func() error { return s.SetEndTime(*req.EndTime) })
	}
	switch {
	case req.Price != nil:
		steps = append(steps, func() error { return s.SetPrice(strconv.FormatFloat(*req.Price, 'f', -1, 64)) })
	case req.ClearPrice:
		steps = append(steps, func() error { return s.SetPrice("") })
	}
	if req.Title != nil {
		steps = append(steps, func() error { return s.SetTitle(*req.Title) })
	}
	if req.ClientID != nil {
		steps = append(steps, func() error { return s.SetClient(*req.ClientID) })
	}
	if req.Status != nil {
		steps = append(steps, func() error { return s.SetStatus(*req.Status) })
	}
	if req.PaymentMethod != nil {
		steps = append(steps, func() error { return s.SetPaymentMethod(*req.PaymentMethod) })
	}
	if req.Notes != nil {
		steps = append(steps, func() error { return s.SetNotes(*req.Notes) })
	}

	for _, step := range steps {
		if err := step(); err != nil {
			uc.logger.Warn("SaveAppointment: rejected change: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	payload, err := s.Save()
	if err != nil {
		uc.logger.Warn("SaveAppointment: draft rejected: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return payload, nil
}

func toAppointment(p *draft.SavePayload) *domain.Appointment {
	status, err := domain.ParseStatus(p.Status)
	if err != nil {
		status = domain.DefaultStatus
	}

	a := &domain.Appointment{
		Title:      p.Title,
		StartTime:  p.StartTime,
		EndTime:    p.EndTime,
		ResourceID: p.EmployeeID,
		ClientID:   p.ClientID,
		ServiceIDs: p.ServiceIDs,
		Status:     status,
		Price:      p.Price,
	}
	if p.PaymentMethod != nil {
		a.PaymentMethod = *p.PaymentMethod
	}
	if p.Notes != nil {
		a.Notes = *p.Notes
	}
	return a
}

// diff оставляет в обновлении только поля, которые отличаются от сохраненных
func diff(existing *domain.Appointment, p *draft.SavePayload, servicesSupplied bool) domain.AppointmentUpdate {
	var upd domain.AppointmentUpdate

	if p.Title != existing.Title {
		upd.Title = &p.Title
	}
	if p.StartTime != existing.StartTime {
		upd.StartTime = &p.StartTime
	}
	if p.EndTime != existing.EndTime {
		upd.EndTime = &p.EndTime
	}
	if v, changed := changedRef(existing.ResourceID, p.EmployeeID); changed {
		upd.ResourceID = &v
	}
	if v, changed := changedRef(existing.ClientID, p.ClientID); changed {
		upd.ClientID = &v
	}
	if servicesSupplied && !equalIDs(existing.ServiceIDs, p.ServiceIDs) {
		upd.ServiceIDs = p.ServiceIDs
	}
	if status := domain.AppointmentStatus(p.Status); status != existing.Status {
		upd.Status = &status
	}
	switch {
	case p.Price == nil && existing.Price != nil:
		upd.ClearPrice = true
	case p.Price != nil && (existing.Price == nil || *existing.Price != *p.Price):
		upd.Price = p.Price
	}
	if v := ptr.Deref(p.PaymentMethod, ""); v != existing.PaymentMethod {
		upd.PaymentMethod = &v
	}
	if v := ptr.Deref(p.Notes, ""); v != existing.Notes {
		upd.Notes = &v
	}

	return upd
}

func changedRef(stored, next *string) (string, bool) {
	a, b := ptr.Deref(stored, ""), ptr.Deref(next, "")
	return b, a != b
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
