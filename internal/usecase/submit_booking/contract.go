package submit_booking

import (
	"context"

	"github.com/m04kA/SMC-WizardService/internal/domain"
	"github.com/m04kA/SMC-WizardService/internal/integrations/bookingservice"
)

// SessionRepository интерфейс репозитория сессий
type SessionRepository interface {
	GetByID(ctx context.Context, id string) (*domain.WizardSession, error)
	MarkConfirmed(ctx context.Context, id string, referenceCode string) error
}

// BookingServiceClient интерфейс клиента BookingService
type BookingServiceClient interface {
	CreateBooking(ctx context.Context, req *bookingservice.CreateBookingRequest) (*bookingservice.CreateBookingResponse, error)
}

// TxManager интерфейс менеджера транзакций
// Защита от двойной отправки: проверка статуса и перевод в confirmed
// выполняются в одной serializable-транзакции
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
