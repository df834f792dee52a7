package sessions

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия мастера не найдена
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionCompleted возвращается при попытке изменить завершенную сессию
	ErrSessionCompleted = errors.New("session already completed")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
