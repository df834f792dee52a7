package get_calendar

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-WizardService/internal/api/handlers"
	getCalendar "github.com/m04kA/SMC-WizardService/internal/usecase/get_calendar"
)

const (
	msgSessionNotFound = "сессия не найдена"
	msgInvalidMonth    = "некорректные параметры year/month"
	msgMonthOutOfRange = "месяц раньше текущего недоступен"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/wizard/sessions/{sessionId}/calendar?year=2026&month=9
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	req := &getCalendar.Request{SessionID: sessionID}

	query := r.URL.Query()
	if rawYear := query.Get("year"); rawYear != "" {
		year, err := strconv.Atoi(rawYear)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidMonth)
			return
		}
		req.Year = year
	}
	if rawMonth := query.Get("month"); rawMonth != "" {
		month, err := strconv.Atoi(rawMonth)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidMonth)
			return
		}
		req.Month = time.Month(month)
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrInvalidInput):
			h.logger.Warn("GET /wizard/sessions/{id}/calendar - Invalid input: session_id=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidMonth)
		case errors.Is(err, getCalendar.ErrMonthOutOfRange):
			h.logger.Warn("GET /wizard/sessions/{id}/calendar - Month out of range: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgMonthOutOfRange)
		case errors.Is(err, getCalendar.ErrSessionNotFound):
			h.logger.Warn("GET /wizard/sessions/{id}/calendar - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
		default:
			h.logger.Error("GET /wizard/sessions/{id}/calendar - Failed to build calendar: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
