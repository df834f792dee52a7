package update_form

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена
	ErrSessionNotFound = errors.New("update_form: session not found")

	// ErrSessionCompleted возвращается при попытке изменить завершенную сессию
	ErrSessionCompleted = errors.New("update_form: session already completed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_form: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_form: internal error")
)
