package preview_appointment

import (
	previewAppointment "github.com/m04kA/SMC-ScheduleBoard/internal/usecase/preview_appointment"
)

// PreviewRequest HTTP request model
type PreviewRequest struct {
	StartTime  string   `json:"start_time"`
	ServiceIDs []string `json:"service_ids"`
}

// PreviewResponse HTTP response model
type PreviewResponse struct {
	TotalMinutes int      `json:"total_minutes"`
	TotalPrice   float64  `json:"total_price"`
	EndTime      string   `json:"end_time"`
	ServiceNames []string `json:"service_names"`
}

// ToUseCaseRequest конвертирует HTTP запрос в запрос use case
func (r PreviewRequest) ToUseCaseRequest() *previewAppointment.Request {
	return &previewAppointment.Request{
		StartTime:  r.StartTime,
		ServiceIDs: r.ServiceIDs,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *previewAppointment.Response) *PreviewResponse {
	return &PreviewResponse{
		TotalMinutes: resp.TotalMinutes,
		TotalPrice:   resp.TotalPrice,
		EndTime:      resp.EndTime.String(),
		ServiceNames: resp.ServiceNames,
	}
}
