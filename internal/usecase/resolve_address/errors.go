package resolve_address

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена
	ErrSessionNotFound = errors.New("resolve_address: session not found")

	// ErrSessionCompleted возвращается при попытке изменить завершенную сессию
	ErrSessionCompleted = errors.New("resolve_address: session already completed")

	// ErrCityNotSupported возвращается, когда город адреса не обслуживается
	ErrCityNotSupported = errors.New("resolve_address: city is not supported")

	// ErrAddressNotFound возвращается, когда сохраненный адрес не найден
	ErrAddressNotFound = errors.New("resolve_address: saved address not found")

	// ErrUnauthorized возвращается при работе с сохраненными адресами без
	// привязки сессии к пользователю
	ErrUnauthorized = errors.New("resolve_address: session is not bound to a user")

	// ErrSuggestUnavailable возвращается при недоступности сервиса автодополнения
	ErrSuggestUnavailable = errors.New("resolve_address: address suggestions unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("resolve_address: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("resolve_address: internal error")
)
