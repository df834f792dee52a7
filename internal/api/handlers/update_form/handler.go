package update_form

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-WizardService/internal/api/handlers"
	updateForm "github.com/m04kA/SMC-WizardService/internal/usecase/update_form"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные формы"
	msgSessionNotFound    = "сессия не найдена"
	msgSessionCompleted   = "бронирование уже отправлено"
)

type Handler struct {
	useCase UpdateFormUseCase
	logger  Logger
}

func NewHandler(useCase UpdateFormUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/wizard/sessions/{sessionId}/form
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req UpdateFormRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /wizard/sessions/{id}/form - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(sessionID))
	if err != nil {
		switch {
		case errors.Is(err, updateForm.ErrInvalidInput):
			h.logger.Warn("PATCH /wizard/sessions/{id}/form - Invalid input: session_id=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		case errors.Is(err, updateForm.ErrSessionNotFound):
			h.logger.Warn("PATCH /wizard/sessions/{id}/form - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
		case errors.Is(err, updateForm.ErrSessionCompleted):
			h.logger.Warn("PATCH /wizard/sessions/{id}/form - Session completed: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgSessionCompleted)
		default:
			h.logger.Error("PATCH /wizard/sessions/{id}/form - Failed to update form: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
