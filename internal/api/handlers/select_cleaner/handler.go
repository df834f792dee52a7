package select_cleaner

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-WizardService/internal/api/handlers"
	"github.com/m04kA/SMC-WizardService/internal/service/sessions"
	"github.com/m04kA/SMC-WizardService/pkg/types"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени начала, ожидается HH:MM"
	msgSessionNotFound    = "сессия не найдена"
	msgSessionCompleted   = "бронирование уже отправлено"
)

type Handler struct {
	service SessionService
	logger  Logger
}

func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/wizard/sessions/{sessionId}/cleaner
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SelectCleanerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /wizard/sessions/{id}/cleaner - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	var suggestedStartTime types.TimeString
	if req.SuggestedStartTime != "" {
		parsed, err := types.NewTimeStringFromString(req.SuggestedStartTime)
		if err != nil {
			h.logger.Warn("POST /wizard/sessions/{id}/cleaner - Invalid suggestedStartTime: session_id=%s, value=%q",
				sessionID, req.SuggestedStartTime)
			handlers.RespondBadRequest(w, msgInvalidTime)
			return
		}
		suggestedStartTime = parsed
	}

	result, err := h.service.SelectCleaner(r.Context(), sessionID, req.CleanerID, suggestedStartTime)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("POST /wizard/sessions/{id}/cleaner - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
		case errors.Is(err, sessions.ErrSessionCompleted):
			h.logger.Warn("POST /wizard/sessions/{id}/cleaner - Session completed: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgSessionCompleted)
		default:
			h.logger.Error("POST /wizard/sessions/{id}/cleaner - Failed to select cleaner: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
