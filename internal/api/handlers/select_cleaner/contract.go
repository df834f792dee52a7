package select_cleaner

import (
	"context"

	sessionModels "github.com/m04kA/SMC-WizardService/internal/service/sessions/models"
	"github.com/m04kA/SMC-WizardService/pkg/types"
)

type SessionService interface {
	SelectCleaner(ctx context.Context, id string, cleanerID string, suggestedStartTime types.TimeString) (*sessionModels.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
