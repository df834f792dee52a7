package get_session

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-WizardService/internal/api/handlers"
	"github.com/m04kA/SMC-WizardService/internal/api/middleware"
	"github.com/m04kA/SMC-WizardService/internal/service/sessions"
)

const (
	msgSessionNotFound  = "сессия не найдена"
	msgSessionCompleted = "бронирование уже отправлено"
	msgAuthRequired     = "требуется вход в аккаунт"
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

// Handle GET /api/v1/wizard/sessions/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	result, err := h.service.GetByID(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("GET /wizard/sessions/{id} - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
		default:
			h.logger.Error("GET /wizard/sessions/{id} - Failed to get session: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleBind POST /api/v1/wizard/sessions/{sessionId}/bind
// Привязывает сессию к вошедшему пользователю
func (h *Handler) HandleBind(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /wizard/sessions/{id}/bind - Unauthenticated request: session_id=%s", sessionID)
		handlers.RespondUnauthorized(w, msgAuthRequired)
		return
	}

	result, err := h.service.BindUser(r.Context(), sessionID, userID)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("POST /wizard/sessions/{id}/bind - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
		case errors.Is(err, sessions.ErrSessionCompleted):
			h.logger.Warn("POST /wizard/sessions/{id}/bind - Session completed: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgSessionCompleted)
		default:
			h.logger.Error("POST /wizard/sessions/{id}/bind - Failed to bind session: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /wizard/sessions/{id}/bind - Session bound: session_id=%s, user_id=%d", sessionID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/v1/wizard/sessions/{sessionId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	if err := h.service.Delete(r.Context(), sessionID); err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("DELETE /wizard/sessions/{id} - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
		default:
			h.logger.Error("DELETE /wizard/sessions/{id} - Failed to delete session: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /wizard/sessions/{id} - Session deleted: session_id=%s", sessionID)
	handlers.RespondNoContent(w)
}
