package manage_slots

import (
	"context"

	manageSlots "github.com/m04kA/SMC-WizardService/internal/usecase/manage_slots"
)

type ManageSlotsUseCase interface {
	Add(ctx context.Context, req *manageSlots.AddRequest) (*manageSlots.Response, error)
	Remove(ctx context.Context, req *manageSlots.RemoveRequest) (*manageSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
