package get_slot_options

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-WizardService/internal/api/handlers"
	getSlotOptions "github.com/m04kA/SMC-WizardService/internal/usecase/get_slot_options"
	"github.com/m04kA/SMC-WizardService/pkg/types"
)

const (
	msgSessionNotFound = "сессия не найдена"
	msgInvalidTime     = "некорректный формат времени начала, ожидается HH:MM"
)

type Handler struct {
	useCase GetSlotOptionsUseCase
	logger  Logger
}

func NewHandler(useCase GetSlotOptionsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/wizard/sessions/{sessionId}/slot-options?startTime=10:00
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	req := &getSlotOptions.Request{SessionID: sessionID}
	if raw := r.URL.Query().Get("startTime"); raw != "" {
		startTime, err := types.NewTimeStringFromString(raw)
		if err != nil {
			h.logger.Warn("GET /wizard/sessions/{id}/slot-options - Invalid startTime: session_id=%s, value=%q", sessionID, raw)
			handlers.RespondBadRequest(w, msgInvalidTime)
			return
		}
		req.StartTime = startTime
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getSlotOptions.ErrInvalidInput):
			h.logger.Warn("GET /wizard/sessions/{id}/slot-options - Invalid input: session_id=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidTime)
		case errors.Is(err, getSlotOptions.ErrSessionNotFound):
			h.logger.Warn("GET /wizard/sessions/{id}/slot-options - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
		default:
			h.logger.Error("GET /wizard/sessions/{id}/slot-options - Failed to build options: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
