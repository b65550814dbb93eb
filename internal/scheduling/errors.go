package scheduling

import "errors"

var (
	// ErrInvalidGrid возвращается при некорректном окне сетки или размере слота
	// Это ошибка программиста/конфигурации, а не пользовательских данных
	ErrInvalidGrid = errors.New("scheduling: invalid grid configuration")

	// ErrInvalidDate возвращается, когда дата не в формате YYYY-MM-DD
	ErrInvalidDate = errors.New("scheduling: invalid date")
)
