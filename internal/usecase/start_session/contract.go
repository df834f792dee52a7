package start_session

import (
	"context"

	"github.com/m04kA/SMC-WizardService/internal/domain"
	"github.com/m04kA/SMC-WizardService/internal/integrations/catalogservice"
)

// SessionRepository интерфейс репозитория сессий
type SessionRepository interface {
	Create(ctx context.Context, s *domain.WizardSession) (*domain.WizardSession, error)
}

// CatalogServiceClient интерфейс клиента CatalogService
type CatalogServiceClient interface {
	GetCatalog(ctx context.Context) (*catalogservice.Catalog, error)
}

// IDGenerator интерфейс генерации идентификаторов сессий
type IDGenerator interface {
	NewID() string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
