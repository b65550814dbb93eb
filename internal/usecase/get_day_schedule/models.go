package get_day_schedule

import (
	"github.com/m04kA/SMC-ScheduleBoard/internal/scheduling"
)

// Navigation шаг навигации по дням
type Navigation string

const (
	NavNone  Navigation = ""
	NavPrev  Navigation = "prev"
	NavNext  Navigation = "next"
	NavToday Navigation = "today"
)

// Request модель запроса сетки дня
type Request struct {
	Date string     // YYYY-MM-DD, пусто - сегодня
	Nav  Navigation // применяется к Date
}

// Response модель ответа
type Response struct {
	Schedule *scheduling.DaySchedule
}
