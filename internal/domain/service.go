package domain

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ServiceOffering is a catalog entry that can be selected for an appointment
type ServiceOffering struct {
	ID              string
	Name            *string
	ServiceName     *string
	Title           *string
	DurationMinutes *float64 // nil when absent or non-numeric
	Price           *float64 // nil when absent or non-numeric
}

var serviceNameChain = []func(ServiceOffering) string{
	func(s ServiceOffering) string { return derefString(s.Name) },
	func(s ServiceOffering) string { return derefString(s.ServiceName) },
	func(s ServiceOffering) string { return derefString(s.Title) },
	func(s ServiceOffering) string { return s.ID },
}

// DisplayName resolves name, then service_name, then title, then id
func (s ServiceOffering) DisplayName() string {
	return FirstNonEmpty(s, serviceNameChain...)
}

// EffectiveDuration returns the duration this service contributes to an aggregate.
// Missing or invalid durations count as DefaultServiceDurationMinutes.
func (s ServiceOffering) EffectiveDuration() int {
	if !isFinite(s.DurationMinutes) {
		return DefaultServiceDurationMinutes
	}
	return int(math.Round(*s.DurationMinutes))
}

// EffectivePrice returns the price this service contributes; missing or invalid prices count as 0
func (s ServiceOffering) EffectivePrice() float64 {
	if !isFinite(s.Price) {
		return 0
	}
	return *s.Price
}

func isFinite(v *float64) bool {
	return v != nil && !math.IsNaN(*v) && !math.IsInf(*v, 0)
}

// serviceOfferingJSON is the transport shape; numeric fields may arrive as numbers, strings or garbage
type serviceOfferingJSON struct {
	ID              json.RawMessage `json:"id"`
	Name            *string         `json:"name"`
	ServiceName     *string         `json:"service_name"`
	Title           *string         `json:"title"`
	DurationMinutes json.RawMessage `json:"duration_minutes"`
	Price           json.RawMessage `json:"price"`
}

// UnmarshalJSON accepts records with inconsistent schemas: numeric ids, numeric strings,
// nulls and non-numeric values all decode without error.
func (s *ServiceOffering) UnmarshalJSON(data []byte) error {
	var raw serviceOfferingJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	s.ID = rawToString(raw.ID)
	s.Name = raw.Name
	s.ServiceName = raw.ServiceName
	s.Title = raw.Title
	s.DurationMinutes = rawToNumber(raw.DurationMinutes)
	s.Price = rawToNumber(raw.Price)
	return nil
}

func rawToString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

func rawToNumber(raw json.RawMessage) *float64 {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return &f
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
			return &v
		}
	}
	return nil
}
