package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleBoard/internal/domain"
	"github.com/m04kA/SMC-ScheduleBoard/pkg/ptr"
)

func appt(id, resourceID, start, end string) domain.Appointment {
	a := domain.Appointment{
		ID:        id,
		Title:     id,
		StartTime: start,
		EndTime:   end,
		Status:    domain.StatusBooked,
	}
	if resourceID != "" {
		a.ResourceID = ptr.Ptr(resourceID)
	}
	return a
}

func TestSlotIndex_SameCellKeepsInsertionOrder(t *testing.T) {
	idx := BuildSlotIndex([]domain.Appointment{
		appt("first", "emp-1", "2025-10-15 09:30", "2025-10-15 10:00"),
		appt("second", "emp-1", "2025-10-15 09:30", "2025-10-15 11:00"),
	})

	cell := idx.Lookup("emp-1", 570)
	require.Len(t, cell, 2)
	assert.Equal(t, "first", cell[0].ID)
	assert.Equal(t, "second", cell[1].ID)
	assert.Equal(t, 2, idx.Len())
}

func TestSlotIndex_BucketsByStartOnly(t *testing.T) {
	idx := BuildSlotIndex([]domain.Appointment{
		appt("long", "emp-1", "2025-10-15 09:00", "2025-10-15 11:00"),
	})

	assert.Len(t, idx.Lookup("emp-1", 540), 1)
	assert.Empty(t, idx.Lookup("emp-1", 570))
	assert.Empty(t, idx.Lookup("emp-1", 600))
	assert.Len(t, idx.Cells(), 1)
}

func TestSlotIndex_UnassignedExcluded(t *testing.T) {
	var idx *SlotIndex
	require.NotPanics(t, func() {
		idx = BuildSlotIndex([]domain.Appointment{
			appt("walk-in", "", "2025-10-15 10:00", "2025-10-15 10:30"),
			appt("blank-id", "", "2025-10-15 11:00", "2025-10-15 11:30"),
		})
	})

	assert.Empty(t, idx.Cells())
	assert.Equal(t, 0, idx.Len())
	require.Len(t, idx.Unassigned(), 2)
	assert.Equal(t, "walk-in", idx.Unassigned()[0].ID)
}

func TestSlotIndex_EmptyLookupIsNotNil(t *testing.T) {
	idx := BuildSlotIndex(nil)
	cell := idx.Lookup("nobody", 480)
	assert.NotNil(t, cell)
	assert.Empty(t, cell)
}

func TestSlotIndex_InvalidStartTime(t *testing.T) {
	idx := BuildSlotIndex([]domain.Appointment{
		appt("broken", "emp-1", "15.10.2025 09:30", ""),
	})
	assert.Empty(t, idx.Cells())
	assert.Len(t, idx.Invalid(), 1)
}

func TestSlotIndex_CellKeys(t *testing.T) {
	idx := BuildSlotIndex([]domain.Appointment{
		appt("a", "emp-2", "2025-10-15 10:00", "2025-10-15 10:30"),
		appt("b", "emp-1", "2025-10-15 09:30", "2025-10-15 10:00"),
	})

	cells := idx.Cells()
	assert.Contains(t, cells, "emp-2|600")
	assert.Contains(t, cells, "emp-1|570")
	assert.Equal(t, []CellKey{{"emp-1", 570}, {"emp-2", 600}}, idx.Keys())
}

func TestSlotIndex_Deterministic(t *testing.T) {
	input := []domain.Appointment{
		appt("a", "emp-1", "2025-10-15 09:30", "2025-10-15 10:00"),
		appt("b", "emp-2", "2025-10-15 09:30", "2025-10-15 10:00"),
		appt("c", "emp-1", "2025-10-15 09:30", "2025-10-15 09:45"),
		appt("d", "", "2025-10-15 12:00", "2025-10-15 12:30"),
	}

	first := BuildSlotIndex(input).Cells()
	second := BuildSlotIndex(input).Cells()
	assert.Equal(t, first, second)
}
