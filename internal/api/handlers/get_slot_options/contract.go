package get_slot_options

import (
	"context"

	getSlotOptions "github.com/m04kA/SMC-WizardService/internal/usecase/get_slot_options"
)

type GetSlotOptionsUseCase interface {
	Execute(ctx context.Context, req *getSlotOptions.Request) (*getSlotOptions.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
