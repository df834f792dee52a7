package get_session

import (
	"context"

	sessionModels "github.com/m04kA/SMC-WizardService/internal/service/sessions/models"
)

type SessionService interface {
	GetByID(ctx context.Context, id string) (*sessionModels.SessionResponse, error)
	BindUser(ctx context.Context, id string, userID int64) (*sessionModels.SessionResponse, error)
	Delete(ctx context.Context, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
