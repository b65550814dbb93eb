package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ScheduleBoard/pkg/types"
)

var (
	// ErrInvalidStatus is returned for a status outside the known set
	ErrInvalidStatus = errors.New("domain: invalid appointment status")

	// ErrInvalidDateTime is returned when a "YYYY-MM-DD HH:MM" value cannot be parsed
	ErrInvalidDateTime = errors.New("domain: invalid date time")
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusBooked    AppointmentStatus = "booked"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// DefaultStatus is applied when a record carries no status
const DefaultStatus = StatusBooked

// ParseStatus converts a raw status; empty input yields DefaultStatus
func ParseStatus(s string) (AppointmentStatus, error) {
	switch AppointmentStatus(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return DefaultStatus, nil
	case StatusBooked:
		return StatusBooked, nil
	case StatusConfirmed:
		return StatusConfirmed, nil
	case StatusCompleted:
		return StatusCompleted, nil
	case StatusCancelled:
		return StatusCancelled, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}

// Appointment is a time-boxed booking as returned by the store.
// StartTime and EndTime keep the literal "YYYY-MM-DD HH:MM" form.
type Appointment struct {
	ID            string
	Title         string
	StartTime     string
	EndTime       string
	ResourceID    *string // nil for unassigned appointments
	ClientID      *string
	ClientName    *string
	ServiceIDs    []string // ordered, duplicates kept
	ServiceNames  []string
	Status        AppointmentStatus
	Price         *float64
	PaymentMethod string
	Notes         string
}

// IsAssigned returns true if the appointment belongs to a resource column
func (a *Appointment) IsAssigned() bool {
	return a.ResourceID != nil && *a.ResourceID != ""
}

// StartMinute returns minutes since local midnight of the start time
func (a *Appointment) StartMinute() (int, error) {
	_, t, err := SplitDateTime(a.StartTime)
	if err != nil {
		return 0, err
	}
	return t.Minutes()
}

// DurationMinutes returns end - start in minutes; an end earlier than the start on the clock
// is read as crossing midnight. Unparseable values yield 0.
func (a *Appointment) DurationMinutes() int {
	start, errStart := a.StartMinute()
	_, endTime, errEnd := SplitDateTime(a.EndTime)
	if errStart != nil || errEnd != nil {
		return 0
	}
	end, err := endTime.Minutes()
	if err != nil {
		return 0
	}
	if end < start {
		end += MinutesPerDay
	}
	return end - start
}

// SplitDateTime splits "YYYY-MM-DD HH:MM" into its date and wall-clock parts
func SplitDateTime(s string) (string, types.TimeString, error) {
	t, err := time.Parse(DateTimeFormat, strings.TrimSpace(s))
	if err != nil {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidDateTime, s)
	}
	return t.Format(DateFormat), types.NewTimeString(t), nil
}

// JoinDateTime formats a date and wall-clock time as "YYYY-MM-DD HH:MM"
func JoinDateTime(date string, t types.TimeString) string {
	return date + " " + t.String()
}

// AppointmentUpdate is a partial change set; nil fields are left untouched.
// An empty string on a nullable reference clears the column.
type AppointmentUpdate struct {
	Title         *string
	StartTime     *string
	EndTime       *string
	ResourceID    *string
	ClientID      *string
	ServiceIDs    []string // nil keeps the stored list
	Status        *AppointmentStatus
	Price         *float64
	ClearPrice    bool
	PaymentMethod *string
	Notes         *string
}

// IsEmpty reports whether the update changes nothing
func (u AppointmentUpdate) IsEmpty() bool {
	return u.Title == nil && u.StartTime == nil && u.EndTime == nil &&
		u.ResourceID == nil && u.ClientID == nil && u.ServiceIDs == nil &&
		u.Status == nil && u.Price == nil && !u.ClearPrice &&
		u.PaymentMethod == nil && u.Notes == nil
}
