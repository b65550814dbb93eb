package scheduling

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ScheduleBoard/internal/domain"
)

// Day календарная дата без времени и зоны
// Навигация возвращает новое значение и не трогает исходное; загрузку данных делает вызывающий
type Day struct {
	t time.Time
}

// NewDay берет год, месяц и день из t
func NewDay(t time.Time) Day {
	return Day{t: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// ParseDay разбирает YYYY-MM-DD
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(domain.DateFormat, strings.TrimSpace(s))
	if err != nil {
		return Day{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return NewDay(t), nil
}

// Today текущая дата по часам вызывающего
func Today(now time.Time) Day {
	return NewDay(now)
}

// ShiftDay сдвиг на delta дней (обычно ±1)
func (d Day) ShiftDay(delta int) Day {
	return Day{t: d.t.AddDate(0, 0, delta)}
}

// GoToToday переход на сегодняшнюю дату
func (d Day) GoToToday(now time.Time) Day {
	return Today(now)
}

// SetDate переход на произвольную дату YYYY-MM-DD
// При ошибке разбора возвращается исходная дата
func (d Day) SetDate(iso string) (Day, error) {
	next, err := ParseDay(iso)
	if err != nil {
		return d, err
	}
	return next, nil
}

// IsZero true для незаданной даты
func (d Day) IsZero() bool {
	return d.t.IsZero()
}

// Time полночь даты в UTC
func (d Day) Time() time.Time {
	return d.t
}

// String дата в формате YYYY-MM-DD
func (d Day) String() string {
	return d.t.Format(domain.DateFormat)
}
