package draft

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-ScheduleBoard/internal/domain"
	"github.com/m04kA/SMC-ScheduleBoard/internal/pricing"
	"github.com/m04kA/SMC-ScheduleBoard/pkg/types"
)

// State состояние сессии редактирования
type State string

const (
	StateOpen      State = "open"
	StateEditing   State = "editing"
	StateSaved     State = "saved"
	StateCancelled State = "cancelled"
)

// DefaultTitle заголовок, если пользователь его не ввел
const DefaultTitle = "Appointment"

// Session черновик одной записи: создание или редактирование.
// Конец записи и цена пересчитываются из выбранных услуг, пока пользователь
// не изменил соответствующее поле сам (две независимые односторонние защелки).
type Session struct {
	catalog      *pricing.Catalog
	defaultTitle string

	id            *string
	date          string
	title         string
	startTime     types.TimeString
	endTime       types.TimeString
	resourceID    string
	clientID      string
	serviceIDs    []string
	status        domain.AppointmentStatus
	price         string
	paymentMethod string
	notes         string

	endTimeTouched bool
	priceTouched   bool

	state State
}

// Option настройка сессии
type Option func(*Session)

// WithDefaultTitle задает заголовок-заглушку для пустого title
func WithDefaultTitle(title string) Option {
	return func(s *Session) {
		if strings.TrimSpace(title) != "" {
			s.defaultTitle = title
		}
	}
}

// NewSession открывает пустой черновик по клику на ячейку (сотрудник, бакет) в выбранный день
func NewSession(catalog *pricing.Catalog, date, resourceID string, bucketMinute int, opts ...Option) (*Session, error) {
	if _, err := time.Parse(domain.DateFormat, date); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	if bucketMinute < 0 || bucketMinute >= domain.MinutesPerDay {
		return nil, fmt.Errorf("%w: bucket minute %d", ErrInvalidTime, bucketMinute)
	}

	s := &Session{
		catalog:      catalog,
		defaultTitle: DefaultTitle,
		date:         date,
		startTime:    types.NewTimeStringFromMinutes(bucketMinute),
		resourceID:   resourceID,
		serviceIDs:   make([]string, 0),
		status:       domain.DefaultStatus,
		state:        StateOpen,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.recompute()
	return s, nil
}

// OpenSession открывает черновик для существующей записи
// Время и цена берутся как есть; пересчет начинается только после изменений.
// Сохраненная непустая цена считается введенной пользователем.
func OpenSession(catalog *pricing.Catalog, a domain.Appointment, opts ...Option) (*Session, error) {
	date, start, err := domain.SplitDateTime(a.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: start_time: %v", ErrInvalidAppointment, err)
	}
	_, end, err := domain.SplitDateTime(a.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: end_time: %v", ErrInvalidAppointment, err)
	}

	status := a.Status
	if status == "" {
		status = domain.DefaultStatus
	}

	s := &Session{
		catalog:       catalog,
		defaultTitle:  DefaultTitle,
		date:          date,
		title:         a.Title,
		startTime:     start,
		endTime:       end,
		serviceIDs:    dedupe(a.ServiceIDs),
		status:        status,
		paymentMethod: a.PaymentMethod,
		notes:         a.Notes,
		state:         StateOpen,
	}
	if a.ID != "" {
		id := a.ID
		s.id = &id
	}
	if a.ResourceID != nil {
		s.resourceID = *a.ResourceID
	}
	if a.ClientID != nil {
		s.clientID = *a.ClientID
	}
	if a.Price != nil {
		s.price = formatPrice(*a.Price)
		s.priceTouched = true
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// ToggleService добавляет услугу, если ее нет, иначе убирает
func (s *Session) ToggleService(serviceID string) error {
	if err := s.edit(); err != nil {
		return err
	}

	for i, id := range s.serviceIDs {
		if id == serviceID {
			s.serviceIDs = append(s.serviceIDs[:i:i], s.serviceIDs[i+1:]...)
			s.recompute()
			return nil
		}
	}

	s.serviceIDs = append(s.serviceIDs, serviceID)
	s.recompute()
	return nil
}

// SetServices заменяет набор услуг целиком (дубликаты отбрасываются)
func (s *Session) SetServices(serviceIDs []string) error {
	if err := s.edit(); err != nil {
		return err
	}
	s.serviceIDs = dedupe(serviceIDs)
	s.recompute()
	return nil
}

// SetStartTime меняет начало; конец пересчитывается, если не задан вручную
func (s *Session) SetStartTime(hhmm string) error {
	if err := s.edit(); err != nil {
		return err
	}
	t, err := types.NewTimeStringFromString(hhmm)
	if err != nil {
		return fmt.Errorf("%w: start: %v", ErrInvalidTime, err)
	}
	s.startTime = t
	s.recompute()
	return nil
}

// SetEndTime ручная правка конца; автоматический пересчет после этого отключается
func (s *Session) SetEndTime(hhmm string) error {
	if err := s.edit(); err != nil {
		return err
	}
	t, err := types.NewTimeStringFromString(hhmm)
	if err != nil {
		return fmt.Errorf("%w: end: %v", ErrInvalidTime, err)
	}
	s.endTime = t
	s.endTimeTouched = true
	return nil
}

// SetPrice ручная правка цены; подсказка цены после этого отключается, даже если поле очищено
func (s *Session) SetPrice(price string) error {
	if err := s.edit(); err != nil {
		return err
	}
	s.price = strings.TrimSpace(price)
	s.priceTouched = true
	return nil
}

// SetDate меняет дату записи
func (s *Session) SetDate(date string) error {
	if err := s.edit(); err != nil {
		return err
	}
	if _, err := time.Parse(domain.DateFormat, date); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	s.date = date
	return nil
}

// SetStatus меняет статус; пустая строка - статус по умолчанию
func (s *Session) SetStatus(status string) error {
	if err := s.edit(); err != nil {
		return err
	}
	st, err := domain.ParseStatus(status)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidStatus, err)
	}
	s.status = st
	return nil
}

func (s *Session) SetTitle(title string) error {
	if err := s.edit(); err != nil {
		return err
	}
	s.title = title
	return nil
}

func (s *Session) SetResource(resourceID string) error {
	if err := s.edit(); err != nil {
		return err
	}
	s.resourceID = resourceID
	return nil
}

func (s *Session) SetClient(clientID string) error {
	if err := s.edit(); err != nil {
		return err
	}
	s.clientID = clientID
	return nil
}

func (s *Session) SetPaymentMethod(method string) error {
	if err := s.edit(); err != nil {
		return err
	}
	s.paymentMethod = method
	return nil
}

func (s *Session) SetNotes(notes string) error {
	if err := s.edit(); err != nil {
		return err
	}
	s.notes = notes
	return nil
}

// Totals текущий итог по выбранным услугам
func (s *Session) Totals() pricing.Totals {
	return s.catalog.Aggregate(s.serviceIDs)
}

func (s *Session) State() State                { return s.state }
func (s *Session) Date() string                { return s.date }
func (s *Session) StartTime() types.TimeString { return s.startTime }
func (s *Session) EndTime() types.TimeString   { return s.endTime }
func (s *Session) Price() string               { return s.price }
func (s *Session) EndTimeTouched() bool        { return s.endTimeTouched }
func (s *Session) PriceTouched() bool          { return s.priceTouched }

// ServiceIDs копия выбранных услуг
func (s *Session) ServiceIDs() []string {
	return append([]string(nil), s.serviceIDs...)
}

// Save проверяет черновик и возвращает тело сохранения; сессия закрывается
func (s *Session) Save() (*SavePayload, error) {
	if s.state == StateSaved || s.state == StateCancelled {
		return nil, ErrSessionClosed
	}

	payload := &SavePayload{
		ID:         s.id,
		Title:      strings.TrimSpace(s.title),
		StartTime:  domain.JoinDateTime(s.date, s.startTime),
		EndTime:    domain.JoinDateTime(s.date, s.endTime),
		ServiceIDs: s.ServiceIDs(),
		Status:     string(s.status),
	}
	if payload.ServiceIDs == nil {
		payload.ServiceIDs = []string{}
	}
	if payload.Title == "" {
		payload.Title = s.defaultTitle
	}

	payload.EmployeeID = optional(s.resourceID)
	payload.ClientID = optional(s.clientID)
	payload.PaymentMethod = optional(s.paymentMethod)
	payload.Notes = optional(s.notes)

	if s.price != "" {
		v, err := strconv.ParseFloat(s.price, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPrice, s.price)
		}
		payload.Price = &v
	}

	s.state = StateSaved
	return payload, nil
}

// Cancel закрывает сессию без сохранения
func (s *Session) Cancel() {
	if s.state != StateSaved {
		s.state = StateCancelled
	}
}

func (s *Session) edit() error {
	if s.state == StateSaved || s.state == StateCancelled {
		return ErrSessionClosed
	}
	s.state = StateEditing
	return nil
}

// recompute пересчитывает конец и цену с учетом защелок
func (s *Session) recompute() {
	totals := s.Totals()

	if !s.endTimeTouched {
		if end, err := s.startTime.AddMinutes(totals.TotalMinutes); err == nil {
			s.endTime = end
		}
	}

	if !s.priceTouched {
		if totals.TotalPrice != 0 {
			s.price = formatPrice(totals.TotalPrice)
		} else {
			s.price = ""
		}
	}
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func optional(v string) *string {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	return &v
}

func dedupe(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
