package navigate_step

import (
	"context"

	navigateStep "github.com/m04kA/SMC-WizardService/internal/usecase/navigate_step"
)

type NavigateStepUseCase interface {
	Execute(ctx context.Context, req *navigateStep.Request) (*navigateStep.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
