package get_suggestions

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена
	ErrSessionNotFound = errors.New("get_suggestions: session not found")

	// ErrPrerequisitesMissing возвращается, когда локация или временные окна
	// еще не выбраны и подбирать кандидатов не по чему
	ErrPrerequisitesMissing = errors.New("get_suggestions: location or time slots are not selected")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_suggestions: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_suggestions: internal error")
)
