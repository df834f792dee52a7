package update_form

import (
	"context"

	updateForm "github.com/m04kA/SMC-WizardService/internal/usecase/update_form"
)

type UpdateFormUseCase interface {
	Execute(ctx context.Context, req *updateForm.Request) (*updateForm.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
