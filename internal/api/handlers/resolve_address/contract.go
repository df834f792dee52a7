package resolve_address

import (
	"context"

	resolveAddress "github.com/m04kA/SMC-WizardService/internal/usecase/resolve_address"
)

type ResolveAddressUseCase interface {
	Suggest(ctx context.Context, req *resolveAddress.SuggestRequest) (*resolveAddress.SuggestResponse, error)
	Resolve(ctx context.Context, req *resolveAddress.ResolveRequest) (*resolveAddress.Response, error)
	SelectSaved(ctx context.Context, req *resolveAddress.SelectSavedRequest) (*resolveAddress.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
