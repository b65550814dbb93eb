package draft

// SavePayload тело сохранения записи
// start_time/end_time строго в формате "YYYY-MM-DD HH:MM", пустые необязательные поля не отправляются
type SavePayload struct {
	ID            *string  `json:"id,omitempty"`
	Title         string   `json:"title"`
	StartTime     string   `json:"start_time"`
	EndTime       string   `json:"end_time"`
	EmployeeID    *string  `json:"employee_id,omitempty"`
	ClientID      *string  `json:"client_id,omitempty"`
	ServiceIDs    []string `json:"service_ids"`
	Status        string   `json:"status"`
	Price         *float64 `json:"price,omitempty"`
	PaymentMethod *string  `json:"payment_method,omitempty"`
	Notes         *string  `json:"notes,omitempty"`
}
