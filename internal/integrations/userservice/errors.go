package userservice

import "errors"

var (
	// ErrAddressNotFound возвращается, когда сохраненный адрес не найден
	ErrAddressNotFound = errors.New("userservice client: saved address not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("userservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("userservice client: invalid response")
)
