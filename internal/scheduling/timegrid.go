package scheduling

import (
	"fmt"

	"github.com/m04kA/SMC-ScheduleBoard/internal/domain"
)

// TimeBucket количество минут от локальной полуночи, всегда кратно размеру слота
type TimeBucket int

// Label форматирует бакет как HH:MM
func (b TimeBucket) Label() string {
	return FormatBucket(b)
}

// GridConfig рабочее окно дня и шаг сетки
type GridConfig struct {
	StartMinute int // включительно
	EndMinute   int // не включительно
	SlotMinutes int
}

// DefaultGridConfig 08:00-20:00 с шагом 30 минут
func DefaultGridConfig() GridConfig {
	return GridConfig{
		StartMinute: domain.DefaultDayStartMinute,
		EndMinute:   domain.DefaultDayEndMinute,
		SlotMinutes: domain.DefaultSlotMinutes,
	}
}

// Validate проверяет 0 <= start < end <= 1440 и slot > 0
func (c GridConfig) Validate() error {
	if c.SlotMinutes <= 0 {
		return fmt.Errorf("%w: slot size must be positive, got %d", ErrInvalidGrid, c.SlotMinutes)
	}
	if c.StartMinute < 0 || c.EndMinute > domain.MinutesPerDay || c.StartMinute >= c.EndMinute {
		return fmt.Errorf("%w: window [%d, %d) is not inside a day", ErrInvalidGrid, c.StartMinute, c.EndMinute)
	}
	return nil
}

// BuildTimeGrid генерирует бакеты start, start+slot, ... строго меньше end
// Чистая функция, результат зависит только от аргументов
func BuildTimeGrid(startMinute, endMinuteExclusive, slotSizeMinutes int) ([]TimeBucket, error) {
	cfg := GridConfig{StartMinute: startMinute, EndMinute: endMinuteExclusive, SlotMinutes: slotSizeMinutes}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	buckets := make([]TimeBucket, 0, (endMinuteExclusive-startMinute+slotSizeMinutes-1)/slotSizeMinutes)
	for m := startMinute; m < endMinuteExclusive; m += slotSizeMinutes {
		buckets = append(buckets, TimeBucket(m))
	}

	return buckets, nil
}

// FormatBucket форматирует минуты от полуночи как HH:MM
func FormatBucket(b TimeBucket) string {
	m := int(b)
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
