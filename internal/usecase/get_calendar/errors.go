package get_calendar

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена
	ErrSessionNotFound = errors.New("get_calendar: session not found")

	// ErrMonthOutOfRange возвращается для месяцев раньше текущего
	ErrMonthOutOfRange = errors.New("get_calendar: month is before current month")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_calendar: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_calendar: internal error")
)
