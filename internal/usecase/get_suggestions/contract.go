package get_suggestions

import (
	"context"

	"github.com/m04kA/SMC-WizardService/internal/domain"
	"github.com/m04kA/SMC-WizardService/internal/integrations/matchingservice"
)

// SessionRepository интерфейс репозитория сессий
type SessionRepository interface {
	GetByID(ctx context.Context, id string) (*domain.WizardSession, error)
}

// MatchingServiceClient интерфейс клиента сервиса подбора
type MatchingServiceClient interface {
	GetSuggestions(ctx context.Context, req *matchingservice.SuggestionsRequest) ([]matchingservice.Suggestion, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
