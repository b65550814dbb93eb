package preview_appointment

import "github.com/m04kA/SMC-ScheduleBoard/pkg/types"

// Request выбранные услуги и начало записи
type Request struct {
	StartTime  string   // HH:MM
	ServiceIDs []string // порядок и повторы учитываются
}

// Response итог по выбору и предлагаемый конец записи
type Response struct {
	TotalMinutes int
	TotalPrice   float64
	EndTime      types.TimeString
	ServiceNames []string
}
