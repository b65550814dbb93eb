package scheduling

import (
	"github.com/m04kA/SMC-ScheduleBoard/internal/domain"
)

// DataState состояние данных сетки для слоя отрисовки
type DataState string

const (
	StateLoading DataState = "loading"
	StateReady   DataState = "ready"
	StateEmpty   DataState = "empty"
	StateError   DataState = "error"
)

// DayInput неизменяемый снимок входных данных для построения сетки дня
type DayInput struct {
	Date         Day
	Resources    []domain.Resource
	Appointments []domain.Appointment
	Grid         GridConfig

	// Loading выставляется, пока вызывающий еще ждет данные
	Loading bool
	// LoadErr ошибка загрузки сотрудников или записей; данные при этом считаются пустыми
	LoadErr error
}

// Bucket строка сетки
type Bucket struct {
	Minute TimeBucket
	Label  string
}

// ResourceColumn колонка сетки
type ResourceColumn struct {
	ID          string
	DisplayName string
	PhotoURL    *string
	Color       *string
}

// CellEntry запись в ячейке вместе с высотой блока
type CellEntry struct {
	Appointment     domain.Appointment
	DurationMinutes int
	RowSpan         int // сколько строк сетки занимает блок, минимум 1
}

// DaySchedule то, что получает слой отрисовки
type DaySchedule struct {
	Date       Day
	State      DataState
	Error      string
	Grid       GridConfig
	Buckets    []Bucket
	Resources  []ResourceColumn
	Cells      map[string][]CellEntry
	Unassigned []domain.Appointment

	// OutsideWindow записи, проиндексированные вне рабочего окна (для них нет строки сетки)
	OutsideWindow int
}

// Lookup записи ячейки; пустая ячейка - пустой слайс
func (s *DaySchedule) Lookup(resourceID string, minute TimeBucket) []CellEntry {
	cell, ok := s.Cells[CellKey{ResourceID: resourceID, Minute: int(minute)}.String()]
	if !ok {
		return []CellEntry{}
	}
	return cell
}

// BuildDaySchedule собирает сетку дня: бакеты + колонки + индекс ячеек
// Повторный вызов с теми же входными данными дает структурно равный результат.
// Ошибка возвращается только для некорректной конфигурации сетки.
func BuildDaySchedule(in DayInput) (*DaySchedule, error) {
	buckets, err := BuildTimeGrid(in.Grid.StartMinute, in.Grid.EndMinute, in.Grid.SlotMinutes)
	if err != nil {
		return nil, err
	}

	schedule := &DaySchedule{
		Date:       in.Date,
		Grid:       in.Grid,
		Buckets:    make([]Bucket, 0, len(buckets)),
		Resources:  make([]ResourceColumn, 0, len(in.Resources)),
		Cells:      make(map[string][]CellEntry),
		Unassigned: make([]domain.Appointment, 0),
	}

	for _, b := range buckets {
		schedule.Buckets = append(schedule.Buckets, Bucket{Minute: b, Label: FormatBucket(b)})
	}

	switch {
	case in.LoadErr != nil:
		schedule.State = StateError
		schedule.Error = in.LoadErr.Error()
		return schedule, nil
	case in.Loading:
		schedule.State = StateLoading
		return schedule, nil
	case len(in.Resources) == 0:
		schedule.State = StateEmpty
	default:
		schedule.State = StateReady
	}

	for _, r := range in.Resources {
		schedule.Resources = append(schedule.Resources, ResourceColumn{
			ID:          r.ID,
			DisplayName: r.DisplayName(),
			PhotoURL:    r.PhotoURL,
			Color:       r.Color,
		})
	}

	idx := BuildSlotIndex(in.Appointments)
	for _, key := range idx.Keys() {
		cell := idx.Lookup(key.ResourceID, key.Minute)
		if key.Minute < in.Grid.StartMinute || key.Minute >= in.Grid.EndMinute {
			schedule.OutsideWindow += len(cell)
		}

		entries := make([]CellEntry, 0, len(cell))
		for _, a := range cell {
			duration := layoutDuration(a)
			entries = append(entries, CellEntry{
				Appointment:     a,
				DurationMinutes: duration,
				RowSpan:         RowSpan(duration, in.Grid.SlotMinutes),
			})
		}
		schedule.Cells[key.String()] = entries
	}
	schedule.Unassigned = append(schedule.Unassigned, idx.Unassigned()...)

	return schedule, nil
}

// RowSpan сколько строк сетки занимает блок длительностью durationMinutes
func RowSpan(durationMinutes, slotMinutes int) int {
	if slotMinutes <= 0 || durationMinutes <= 0 {
		return 1
	}
	span := (durationMinutes + slotMinutes - 1) / slotMinutes
	if span < 1 {
		return 1
	}
	return span
}

// layoutDuration длительность для отрисовки, никогда не <= 0
func layoutDuration(a domain.Appointment) int {
	d := a.DurationMinutes()
	if d <= 0 {
		return domain.DefaultServiceDurationMinutes
	}
	return d
}

// IndexedCount количество записей, разложенных по ячейкам
func (s *DaySchedule) IndexedCount() int {
	n := 0
	for _, cell := range s.Cells {
		n += len(cell)
	}
	return n
}
