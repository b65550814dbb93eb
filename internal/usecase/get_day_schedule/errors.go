package get_day_schedule

import "errors"

var (
	// ErrInvalidDate возвращается при дате не в формате YYYY-MM-DD
	ErrInvalidDate = errors.New("invalid schedule date")

	// ErrInvalidNavigation возвращается при неизвестном шаге навигации
	ErrInvalidNavigation = errors.New("invalid navigation step")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)

// errLoadFailed текст ошибки, который видит слой отрисовки; детали остаются в логах
var errLoadFailed = errors.New("failed to load schedule data")
