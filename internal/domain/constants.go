package domain

// Default values used when records are incomplete
const (
	DefaultServiceDurationMinutes = 30
	DefaultSlotMinutes            = 30
	DefaultDayStartMinute         = 8 * 60
	DefaultDayEndMinute           = 20 * 60
	MinutesPerDay                 = 24 * 60
)

// Time format constants
const (
	TimeFormat     = "15:04"            // HH:MM
	DateFormat     = "2006-01-02"       // YYYY-MM-DD
	DateTimeFormat = "2006-01-02 15:04" // YYYY-MM-DD HH:MM, save payload and storage format
)

// Fallback literals for records with no usable name
const (
	FallbackResourceName = "Staff"
)
