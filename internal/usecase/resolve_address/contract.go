package resolve_address

import (
	"context"

	"github.com/m04kA/SMC-WizardService/internal/domain"
	"github.com/m04kA/SMC-WizardService/internal/integrations/geoservice"
	"github.com/m04kA/SMC-WizardService/internal/integrations/userservice"
)

// SessionRepository интерфейс репозитория сессий
type SessionRepository interface {
	GetByID(ctx context.Context, id string) (*domain.WizardSession, error)
	UpdateForm(ctx context.Context, id string, form *domain.BookingFormState) error
}

// GeoServiceClient интерфейс клиента автодополнения адресов
type GeoServiceClient interface {
	SuggestAddresses(ctx context.Context, query string) ([]geoservice.ParsedAddress, error)
}

// UserServiceClient интерфейс клиента UserService
type UserServiceClient interface {
	GetSavedAddress(ctx context.Context, userID int64, addressID string) (*userservice.SavedAddress, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
