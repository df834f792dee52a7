package get_suggestions

import (
	"context"

	getSuggestions "github.com/m04kA/SMC-WizardService/internal/usecase/get_suggestions"
)

type GetSuggestionsUseCase interface {
	Execute(ctx context.Context, req *getSuggestions.Request) (*getSuggestions.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
