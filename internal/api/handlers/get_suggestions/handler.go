package get_suggestions

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-WizardService/internal/api/handlers"
	getSuggestions "github.com/m04kA/SMC-WizardService/internal/usecase/get_suggestions"
)

const (
	msgSessionNotFound      = "сессия не найдена"
	msgPrerequisitesMissing = "сначала выберите адрес и временные окна"
)

type Handler struct {
	useCase GetSuggestionsUseCase
	logger  Logger
}

func NewHandler(useCase GetSuggestionsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/wizard/sessions/{sessionId}/suggestions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	result, err := h.useCase.Execute(r.Context(), &getSuggestions.Request{SessionID: sessionID})
	if err != nil {
		switch {
		case errors.Is(err, getSuggestions.ErrSessionNotFound):
			h.logger.Warn("GET /wizard/sessions/{id}/suggestions - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
		case errors.Is(err, getSuggestions.ErrPrerequisitesMissing):
			h.logger.Warn("GET /wizard/sessions/{id}/suggestions - Prerequisites missing: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgPrerequisitesMissing)
		default:
			h.logger.Error("GET /wizard/sessions/{id}/suggestions - Failed to get suggestions: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
