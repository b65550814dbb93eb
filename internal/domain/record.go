package domain

// AppointmentRecord is the snake_case transport shape of an appointment
type AppointmentRecord struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	StartTime     string   `json:"start_time"`
	EndTime       string   `json:"end_time"`
	EmployeeID    *string  `json:"employee_id"`
	ClientID      *string  `json:"client_id,omitempty"`
	ClientName    *string  `json:"client_name,omitempty"`
	ServiceIDs    []string `json:"service_ids,omitempty"`
	ServiceNames  []string `json:"service_names,omitempty"`
	Status        *string  `json:"status,omitempty"`
	Price         *float64 `json:"price,omitempty"`
	PaymentMethod *string  `json:"payment_method,omitempty"`
	Notes         *string  `json:"notes,omitempty"`
}

// ToAppointment maps the transport record onto the internal model.
// Unknown statuses fall back to DefaultStatus instead of failing the whole list.
func (r AppointmentRecord) ToAppointment() Appointment {
	status, err := ParseStatus(derefString(r.Status))
	if err != nil {
		status = DefaultStatus
	}

	resourceID := r.EmployeeID
	if resourceID != nil && *resourceID == "" {
		resourceID = nil
	}

	return Appointment{
		ID:            r.ID,
		Title:         r.Title,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		ResourceID:    resourceID,
		ClientID:      r.ClientID,
		ClientName:    r.ClientName,
		ServiceIDs:    append([]string(nil), r.ServiceIDs...),
		ServiceNames:  append([]string(nil), r.ServiceNames...),
		Status:        status,
		Price:         r.Price,
		PaymentMethod: derefString(r.PaymentMethod),
		Notes:         derefString(r.Notes),
	}
}
