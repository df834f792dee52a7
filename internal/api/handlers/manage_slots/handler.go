package manage_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-WizardService/internal/api/handlers"
	manageSlots "github.com/m04kA/SMC-WizardService/internal/usecase/manage_slots"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSlot        = "некорректное временное окно"
	msgInvalidIndex       = "некорректный индекс временного окна"
	msgSessionNotFound    = "сессия не найдена"
	msgSessionCompleted   = "бронирование уже отправлено"
	msgSlotLimitReached   = "можно выбрать не более пяти временных окон"
	msgDuplicateSlot      = "такое временное окно уже добавлено"
	msgSlotTooShort       = "окно короче минимальной длительности уборки"
	msgSlotNotFound       = "временное окно не найдено"
)

type Handler struct {
	useCase ManageSlotsUseCase
	logger  Logger
}

func NewHandler(useCase ManageSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// HandleAdd POST /api/v1/wizard/sessions/{sessionId}/slots
func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req AddSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /wizard/sessions/{id}/slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Add(r.Context(), req.ToUseCaseRequest(sessionID))
	if err != nil {
		switch {
		case errors.Is(err, manageSlots.ErrInvalidInput):
			h.logger.Warn("POST /wizard/sessions/{id}/slots - Invalid slot: session_id=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidSlot)
		case errors.Is(err, manageSlots.ErrSessionNotFound):
			h.logger.Warn("POST /wizard/sessions/{id}/slots - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
		case errors.Is(err, manageSlots.ErrSessionCompleted):
			h.logger.Warn("POST /wizard/sessions/{id}/slots - Session completed: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgSessionCompleted)
		case errors.Is(err, manageSlots.ErrSlotLimitReached):
			h.logger.Warn("POST /wizard/sessions/{id}/slots - Slot limit reached: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgSlotLimitReached)
		case errors.Is(err, manageSlots.ErrDuplicateSlot):
			h.logger.Warn("POST /wizard/sessions/{id}/slots - Duplicate slot: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateSlot)
		case errors.Is(err, manageSlots.ErrSlotTooShort):
			h.logger.Warn("POST /wizard/sessions/{id}/slots - Slot too short: session_id=%s, error=%v", sessionID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgSlotTooShort)
		default:
			h.logger.Error("POST /wizard/sessions/{id}/slots - Failed to add slot: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /wizard/sessions/{id}/slots - Slot added: session_id=%s, total=%d", sessionID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

// HandleRemove DELETE /api/v1/wizard/sessions/{sessionId}/slots/{index}
func (h *Handler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["sessionId"]

	index, err := strconv.Atoi(vars["index"])
	if err != nil {
		h.logger.Warn("DELETE /wizard/sessions/{id}/slots/{index} - Invalid index: session_id=%s, value=%q", sessionID, vars["index"])
		handlers.RespondBadRequest(w, msgInvalidIndex)
		return
	}

	result, err := h.useCase.Remove(r.Context(), &manageSlots.RemoveRequest{
		SessionID: sessionID,
		Index:     index,
	})
	if err != nil {
		switch {
		case errors.Is(err, manageSlots.ErrInvalidInput):
			h.logger.Warn("DELETE /wizard/sessions/{id}/slots/{index} - Invalid input: session_id=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidIndex)
		case errors.Is(err, manageSlots.ErrSessionNotFound):
			h.logger.Warn("DELETE /wizard/sessions/{id}/slots/{index} - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
		case errors.Is(err, manageSlots.ErrSessionCompleted):
			h.logger.Warn("DELETE /wizard/sessions/{id}/slots/{index} - Session completed: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgSessionCompleted)
		case errors.Is(err, manageSlots.ErrSlotNotFound):
			h.logger.Warn("DELETE /wizard/sessions/{id}/slots/{index} - Slot not found: session_id=%s, index=%d", sessionID, index)
			handlers.RespondNotFound(w, msgSlotNotFound)
		default:
			h.logger.Error("DELETE /wizard/sessions/{id}/slots/{index} - Failed to remove slot: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /wizard/sessions/{id}/slots/{index} - Slot removed: session_id=%s, total=%d", sessionID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
