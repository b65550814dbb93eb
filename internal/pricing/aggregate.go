package pricing

import (
	"github.com/m04kA/SMC-ScheduleBoard/internal/domain"
	"github.com/m04kA/SMC-ScheduleBoard/pkg/types"
)

// Totals суммарная длительность и цена выбранных услуг
type Totals struct {
	TotalMinutes int
	TotalPrice   float64
}

// Catalog справочник услуг с поиском по id
type Catalog struct {
	services []domain.ServiceOffering
	byID     map[string]int
}

// NewCatalog строит справочник; при повторяющихся id используется первая запись
func NewCatalog(services []domain.ServiceOffering) *Catalog {
	c := &Catalog{
		services: services,
		byID:     make(map[string]int, len(services)),
	}
	for i, s := range services {
		if _, exists := c.byID[s.ID]; !exists {
			c.byID[s.ID] = i
		}
	}
	return c
}

// Find ищет услугу по id
func (c *Catalog) Find(id string) (domain.ServiceOffering, bool) {
	if c == nil {
		return domain.ServiceOffering{}, false
	}
	i, ok := c.byID[id]
	if !ok {
		return domain.ServiceOffering{}, false
	}
	return c.services[i], true
}

// Services все услуги справочника в исходном порядке
func (c *Catalog) Services() []domain.ServiceOffering {
	if c == nil {
		return nil
	}
	return c.services
}

// Names отображаемые названия выбранных услуг; неизвестные id пропускаются
func (c *Catalog) Names(ids []string) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if s, ok := c.Find(id); ok {
			names = append(names, s.DisplayName())
		}
	}
	return names
}

// Aggregate суммирует длительность и цену по выбранным id.
// Порядок сохраняется, повторяющийся id учитывается столько раз, сколько передан.
// Неизвестные id молча пропускаются. Нулевая сумма длительности заменяется на 30 минут,
// к цене этот минимум не применяется.
func (c *Catalog) Aggregate(selectedServiceIDs []string) Totals {
	var totals Totals
	for _, id := range selectedServiceIDs {
		s, ok := c.Find(id)
		if !ok {
			continue
		}
		totals.TotalMinutes += s.EffectiveDuration()
		totals.TotalPrice += s.EffectivePrice()
	}

	if totals.TotalMinutes <= 0 {
		totals.TotalMinutes = domain.DefaultServiceDurationMinutes
	}

	return totals
}

// Aggregate то же, что Catalog.Aggregate, для разового вызова
func Aggregate(selectedServiceIDs []string, catalog []domain.ServiceOffering) Totals {
	return NewCatalog(catalog).Aggregate(selectedServiceIDs)
}

// DeriveEndTime прибавляет totalMinutes к времени HH:MM.
// Переход через полночь не отсекается: "23:45" + 30 = "00:15". Записи считаются
// однодневными, запрет таких интервалов - забота валидации вызывающего.
func DeriveEndTime(startHHMM string, totalMinutes int) (string, error) {
	start, err := types.NewTimeStringFromString(startHHMM)
	if err != nil {
		return "", err
	}
	end, err := start.AddMinutes(totalMinutes)
	if err != nil {
		return "", err
	}
	return end.String(), nil
}
