package save_appointment

import "github.com/m04kA/SMC-ScheduleBoard/internal/draft"

const (
	operationCreate = "create"
	operationUpdate = "update"
)

// Request изменения черновика; nil означает "поле не передано"
// Для новой записи Date и StartTime обязательны.
type Request struct {
	AppointmentID *string // nil - создание новой записи

	Date          *string // YYYY-MM-DD
	StartTime     *string // HH:MM
	EndTime       *string // HH:MM, ручная правка
	EmployeeID    *string
	ServiceIDs    []string // nil - набор не меняется
	Title         *string
	ClientID      *string
	Status        *string
	Price         *float64 // ручная правка цены
	ClearPrice    bool     // цена явно очищена
	PaymentMethod *string
	Notes         *string
}

// Response нормализованное тело сохранения
type Response struct {
	Created bool
	Payload *draft.SavePayload
}
