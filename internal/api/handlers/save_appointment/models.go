package save_appointment

import (
	"encoding/json"

	saveAppointment "github.com/m04kA/SMC-ScheduleBoard/internal/usecase/save_appointment"
)

// AppointmentRequest тело создания и редактирования записи
// Отсутствующий ключ означает "не менять"
type AppointmentRequest struct {
	Date          *string       `json:"date"`
	EmployeeID    *string       `json:"employee_id"`
	StartTime     *string       `json:"start_time"`
	EndTime       *string       `json:"end_time"`
	ServiceIDs    []string      `json:"service_ids"`
	Title         *string       `json:"title"`
	ClientID      *string       `json:"client_id"`
	Status        *string       `json:"status"`
	Price         OptionalPrice `json:"price"`
	PaymentMethod *string       `json:"payment_method"`
	Notes         *string       `json:"notes"`
}

// OptionalPrice различает отсутствующий ключ и явный null
type OptionalPrice struct {
	Set   bool
	Value *float64
}

func (p *OptionalPrice) UnmarshalJSON(data []byte) error {
	p.Set = true
	if string(data) == "null" {
		p.Value = nil
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	p.Value = &v
	return nil
}

// ToUseCaseRequest конвертирует HTTP запрос в запрос use case
// appointmentID nil для создания
func (r *AppointmentRequest) ToUseCaseRequest(appointmentID *string) *saveAppointment.Request {
	req := &saveAppointment.Request{
		AppointmentID: appointmentID,
		Date:          r.Date,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		EmployeeID:    r.EmployeeID,
		ServiceIDs:    r.ServiceIDs,
		Title:         r.Title,
		ClientID:      r.ClientID,
		Status:        r.Status,
		PaymentMethod: r.PaymentMethod,
		Notes:         r.Notes,
	}
	if r.Price.Set {
		req.Price = r.Price.Value
		req.ClearPrice = r.Price.Value == nil
	}
	return req
}
