package bookingservice

import "errors"

var (
	// ErrRejected возвращается, когда BookingService отклонил заявку
	ErrRejected = errors.New("bookingservice client: booking rejected")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("bookingservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("bookingservice client: invalid response")
)
