package manage_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-WizardService/internal/domain"
)

// SessionRepository интерфейс репозитория сессий
type SessionRepository interface {
	GetByID(ctx context.Context, id string) (*domain.WizardSession, error)
	UpdateForm(ctx context.Context, id string, form *domain.BookingFormState) error
}

// TxManager интерфейс менеджера транзакций
// Проверка лимита слотов и запись выполняются в одной serializable-транзакции
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
