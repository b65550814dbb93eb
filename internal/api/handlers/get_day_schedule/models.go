package get_day_schedule

import (
	"github.com/m04kA/SMC-ScheduleBoard/internal/domain"
	"github.com/m04kA/SMC-ScheduleBoard/internal/scheduling"
)

// DayScheduleResponse HTTP response model
type DayScheduleResponse struct {
	Date          string                           `json:"date"`
	State         string                           `json:"state"`
	Error         string                           `json:"error,omitempty"`
	SlotMinutes   int                              `json:"slot_minutes"`
	Buckets       []BucketResponse                 `json:"buckets"`
	Resources     []ResourceResponse               `json:"resources"`
	Cells         map[string][]AppointmentResponse `json:"cells"`
	Unassigned    []AppointmentResponse            `json:"unassigned"`
	OutsideWindow int                              `json:"outside_window"`
}

type BucketResponse struct {
	Minute int    `json:"minute"`
	Label  string `json:"label"`
}

type ResourceResponse struct {
	ID          string  `json:"id"`
	DisplayName string  `json:"display_name"`
	PhotoURL    *string `json:"photo_url,omitempty"`
	Color       *string `json:"color,omitempty"`
}

// AppointmentResponse запись в ячейке или в списке без сотрудника
type AppointmentResponse struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	StartTime       string   `json:"start_time"`
	EndTime         string   `json:"end_time"`
	EmployeeID      *string  `json:"employee_id"`
	ClientName      *string  `json:"client_name,omitempty"`
	ServiceIDs      []string `json:"service_ids"`
	ServiceNames    []string `json:"service_names,omitempty"`
	Status          string   `json:"status"`
	Price           *float64 `json:"price,omitempty"`
	DurationMinutes int      `json:"duration_minutes"`
	RowSpan         int      `json:"row_span,omitempty"`
}

// FromUseCaseResponse конвертирует модель сетки в HTTP response
func FromUseCaseResponse(s *scheduling.DaySchedule) *DayScheduleResponse {
	resp := &DayScheduleResponse{
		Date:          s.Date.String(),
		State:         string(s.State),
		Error:         s.Error,
		SlotMinutes:   s.Grid.SlotMinutes,
		Buckets:       make([]BucketResponse, len(s.Buckets)),
		Resources:     make([]ResourceResponse, len(s.Resources)),
		Cells:         make(map[string][]AppointmentResponse, len(s.Cells)),
		Unassigned:    make([]AppointmentResponse, len(s.Unassigned)),
		OutsideWindow: s.OutsideWindow,
	}

	for i, b := range s.Buckets {
		resp.Buckets[i] = BucketResponse{Minute: int(b.Minute), Label: b.Label}
	}
	for i, r := range s.Resources {
		resp.Resources[i] = ResourceResponse{
			ID:          r.ID,
			DisplayName: r.DisplayName,
			PhotoURL:    r.PhotoURL,
			Color:       r.Color,
		}
	}
	for key, cell := range s.Cells {
		entries := make([]AppointmentResponse, len(cell))
		for i, e := range cell {
			entries[i] = toAppointmentResponse(e.Appointment, e.DurationMinutes)
			entries[i].RowSpan = e.RowSpan
		}
		resp.Cells[key] = entries
	}
	for i, a := range s.Unassigned {
		resp.Unassigned[i] = toAppointmentResponse(a, a.DurationMinutes())
	}

	return resp
}

func toAppointmentResponse(a domain.Appointment, duration int) AppointmentResponse {
	serviceIDs := a.ServiceIDs
	if serviceIDs == nil {
		serviceIDs = []string{}
	}
	return AppointmentResponse{
		ID:              a.ID,
		Title:           a.Title,
		StartTime:       a.StartTime,
		EndTime:         a.EndTime,
		EmployeeID:      a.ResourceID,
		ClientName:      a.ClientName,
		ServiceIDs:      serviceIDs,
		ServiceNames:    a.ServiceNames,
		Status:          string(a.Status),
		Price:           a.Price,
		DurationMinutes: duration,
	}
}
