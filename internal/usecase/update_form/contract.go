package update_form

import (
	"context"

	"github.com/m04kA/SMC-WizardService/internal/domain"
)

// SessionRepository интерфейс репозитория сессий
type SessionRepository interface {
	GetByID(ctx context.Context, id string) (*domain.WizardSession, error)
	UpdateForm(ctx context.Context, id string, form *domain.BookingFormState) error
}

// EstimateCoordinator интерфейс координатора пересчета стоимости
type EstimateCoordinator interface {
	Trigger(sessionID string, snap domain.PricingSnapshot)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
