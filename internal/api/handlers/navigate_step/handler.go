package navigate_step

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-WizardService/internal/api/handlers"
	sessionModels "github.com/m04kA/SMC-WizardService/internal/service/sessions/models"
	navigateStep "github.com/m04kA/SMC-WizardService/internal/usecase/navigate_step"
)

const (
	msgSessionNotFound  = "сессия не найдена"
	msgSessionCompleted = "бронирование уже отправлено"
	msgStepIncomplete   = "заполните текущий шаг, чтобы продолжить"
	msgNoFurtherStep    = "переход за пределы мастера невозможен"
)

type Handler struct {
	useCase NavigateStepUseCase
	logger  Logger
}

func NewHandler(useCase NavigateStepUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// HandleNext POST /api/v1/wizard/sessions/{sessionId}/steps/next
func (h *Handler) HandleNext(w http.ResponseWriter, r *http.Request) {
	h.navigate(w, r, navigateStep.DirectionNext)
}

// HandleBack POST /api/v1/wizard/sessions/{sessionId}/steps/back
func (h *Handler) HandleBack(w http.ResponseWriter, r *http.Request) {
	h.navigate(w, r, navigateStep.DirectionBack)
}

func (h *Handler) navigate(w http.ResponseWriter, r *http.Request, dir navigateStep.Direction) {
	sessionID := mux.Vars(r)["sessionId"]

	result, err := h.useCase.Execute(r.Context(), &navigateStep.Request{
		SessionID: sessionID,
		Direction: dir,
	})
	if err != nil {
		switch {
		case errors.Is(err, navigateStep.ErrSessionNotFound):
			h.logger.Warn("POST /wizard/sessions/{id}/steps/%s - Session not found: session_id=%s", dir, sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
		case errors.Is(err, navigateStep.ErrSessionCompleted):
			h.logger.Warn("POST /wizard/sessions/{id}/steps/%s - Session completed: session_id=%s", dir, sessionID)
			handlers.RespondError(w, http.StatusConflict, msgSessionCompleted)
		case errors.Is(err, navigateStep.ErrStepIncomplete):
			h.logger.Warn("POST /wizard/sessions/{id}/steps/%s - Step incomplete: session_id=%s", dir, sessionID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgStepIncomplete)
		case errors.Is(err, navigateStep.ErrNoFurtherStep):
			h.logger.Warn("POST /wizard/sessions/{id}/steps/%s - No further step: session_id=%s", dir, sessionID)
			handlers.RespondBadRequest(w, msgNoFurtherStep)
		default:
			h.logger.Error("POST /wizard/sessions/{id}/steps/%s - Failed to navigate: session_id=%s, error=%v", dir, sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, sessionModels.FromDomainSession(result.Session))
}
