package pricingservice

import "errors"

var (
	// ErrServiceTypeUnknown возвращается, когда PricingService не знает такую услугу
	ErrServiceTypeUnknown = errors.New("pricingservice client: unknown service type")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("pricingservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("pricingservice client: invalid response")
)
