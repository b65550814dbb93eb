package draft

import "errors"

var (
	// ErrSessionClosed возвращается при изменении уже сохраненной или отмененной сессии
	ErrSessionClosed = errors.New("draft: session is closed")

	// ErrInvalidTime возвращается при некорректном времени HH:MM
	ErrInvalidTime = errors.New("draft: invalid time")

	// ErrInvalidDate возвращается при некорректной дате YYYY-MM-DD
	ErrInvalidDate = errors.New("draft: invalid date")

	// ErrInvalidPrice возвращается, если в поле цены не число
	ErrInvalidPrice = errors.New("draft: invalid price")

	// ErrInvalidStatus возвращается при неизвестном статусе записи
	ErrInvalidStatus = errors.New("draft: invalid status")

	// ErrInvalidAppointment возвращается, если существующую запись нельзя открыть на редактирование
	ErrInvalidAppointment = errors.New("draft: invalid appointment")
)
