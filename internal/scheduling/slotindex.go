package scheduling

import (
	"sort"
	"strconv"

	"github.com/m04kA/SMC-ScheduleBoard/internal/domain"
)

// CellKey ключ ячейки: колонка сотрудника и минута начала
type CellKey struct {
	ResourceID string
	Minute     int
}

// String ключ в виде "{resourceId}|{minute}"
func (k CellKey) String() string {
	return k.ResourceID + "|" + strconv.Itoa(k.Minute)
}

// SlotIndex раскладывает записи по ячейкам (сотрудник, минута начала)
// Запись попадает ровно в одну ячейку по времени начала, даже если длится несколько слотов.
// Пересечения не проверяются: одновременные записи просто лежат в одной ячейке.
type SlotIndex struct {
	cells      map[CellKey][]domain.Appointment
	unassigned []domain.Appointment
	invalid    []domain.Appointment
	indexed    int
}

// BuildSlotIndex строит индекс заново за O(n)
// Записи без сотрудника в сетку не попадают и доступны через Unassigned
func BuildSlotIndex(appointments []domain.Appointment) *SlotIndex {
	idx := &SlotIndex{
		cells:      make(map[CellKey][]domain.Appointment),
		unassigned: make([]domain.Appointment, 0),
		invalid:    make([]domain.Appointment, 0),
	}

	for _, a := range appointments {
		if !a.IsAssigned() {
			idx.unassigned = append(idx.unassigned, a)
			continue
		}

		minute, err := a.StartMinute()
		if err != nil {
			idx.invalid = append(idx.invalid, a)
			continue
		}

		key := CellKey{ResourceID: *a.ResourceID, Minute: minute}
		idx.cells[key] = append(idx.cells[key], a)
		idx.indexed++
	}

	for key := range idx.cells {
		cell := idx.cells[key]
		sort.SliceStable(cell, func(i, j int) bool {
			return cell[i].StartTime < cell[j].StartTime
		})
	}

	return idx
}

// Lookup записи ячейки по возрастанию времени начала; пустая ячейка - пустой слайс
func (idx *SlotIndex) Lookup(resourceID string, minute int) []domain.Appointment {
	cell, ok := idx.cells[CellKey{ResourceID: resourceID, Minute: minute}]
	if !ok {
		return []domain.Appointment{}
	}
	return cell
}

// Cells все непустые ячейки с ключами "{resourceId}|{minute}"
func (idx *SlotIndex) Cells() map[string][]domain.Appointment {
	out := make(map[string][]domain.Appointment, len(idx.cells))
	for key, cell := range idx.cells {
		out[key.String()] = append([]domain.Appointment(nil), cell...)
	}
	return out
}

// Keys все ключи непустых ячеек
func (idx *SlotIndex) Keys() []CellKey {
	keys := make([]CellKey, 0, len(idx.cells))
	for key := range idx.cells {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].ResourceID != keys[j].ResourceID {
			return keys[i].ResourceID < keys[j].ResourceID
		}
		return keys[i].Minute < keys[j].Minute
	})
	return keys
}

// Unassigned записи без сотрудника в порядке поступления
func (idx *SlotIndex) Unassigned() []domain.Appointment {
	return idx.unassigned
}

// Invalid записи с сотрудником, но с нечитаемым временем начала
func (idx *SlotIndex) Invalid() []domain.Appointment {
	return idx.invalid
}

// Len количество записей, разложенных по ячейкам
func (idx *SlotIndex) Len() int {
	return idx.indexed
}
