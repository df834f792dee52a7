package submit_booking

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена
	ErrSessionNotFound = errors.New("submit_booking: session not found")

	// ErrAlreadySubmitted возвращается при повторной отправке той же сессии
	ErrAlreadySubmitted = errors.New("submit_booking: booking already submitted")

	// ErrFormIncomplete возвращается, когда обязательные шаги мастера не заполнены
	ErrFormIncomplete = errors.New("submit_booking: form is incomplete")

	// ErrUnauthorized возвращается, когда сессия не привязана к пользователю
	ErrUnauthorized = errors.New("submit_booking: session is not bound to a user")

	// ErrBookingRejected возвращается, когда BookingService отклонил заявку
	// Сессия остается активной, введенные данные сохраняются
	ErrBookingRejected = errors.New("submit_booking: booking rejected")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("submit_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_booking: internal error")
)
