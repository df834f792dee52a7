package submit_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-WizardService/internal/api/handlers"
	"github.com/m04kA/SMC-WizardService/internal/api/middleware"
	submitBooking "github.com/m04kA/SMC-WizardService/internal/usecase/submit_booking"
)

const (
	msgSessionNotFound  = "сессия не найдена"
	msgAlreadySubmitted = "бронирование уже отправлено"
	msgFormIncomplete   = "заполните все шаги мастера перед отправкой"
	msgAuthRequired     = "для отправки бронирования требуется вход в аккаунт"
	msgBookingRejected  = "не удалось создать бронирование, проверьте данные и попробуйте снова"
)

type Handler struct {
	useCase SubmitBookingUseCase
	logger  Logger
}

func NewHandler(useCase SubmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/wizard/sessions/{sessionId}/submit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /wizard/sessions/{id}/submit - Unauthenticated request: session_id=%s", sessionID)
		handlers.RespondUnauthorized(w, msgAuthRequired)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &submitBooking.Request{
		SessionID: sessionID,
		UserID:    userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, submitBooking.ErrSessionNotFound):
			h.logger.Warn("POST /wizard/sessions/{id}/submit - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
		case errors.Is(err, submitBooking.ErrAlreadySubmitted):
			h.logger.Warn("POST /wizard/sessions/{id}/submit - Already submitted: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadySubmitted)
		case errors.Is(err, submitBooking.ErrFormIncomplete):
			h.logger.Warn("POST /wizard/sessions/{id}/submit - Form incomplete: session_id=%s, error=%v", sessionID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgFormIncomplete)
		case errors.Is(err, submitBooking.ErrUnauthorized):
			h.logger.Warn("POST /wizard/sessions/{id}/submit - Unauthorized: session_id=%s, user_id=%d", sessionID, userID)
			handlers.RespondUnauthorized(w, msgAuthRequired)
		case errors.Is(err, submitBooking.ErrBookingRejected):
			h.logger.Warn("POST /wizard/sessions/{id}/submit - Booking rejected: session_id=%s, error=%v", sessionID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgBookingRejected)
		default:
			h.logger.Error("POST /wizard/sessions/{id}/submit - Failed to submit: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /wizard/sessions/{id}/submit - Booking created: session_id=%s, booking_id=%d, ref=%s",
		sessionID, result.BookingID, result.ReferenceCode)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
