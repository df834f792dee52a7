package sessions

import (
	"context"

	"github.com/m04kA/SMC-WizardService/internal/domain"
)

// SessionRepository интерфейс репозитория сессий
type SessionRepository interface {
	GetByID(ctx context.Context, id string) (*domain.WizardSession, error)
	UpdateForm(ctx context.Context, id string, form *domain.BookingFormState) error
	BindUser(ctx context.Context, id string, userID int64) error
	Delete(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
