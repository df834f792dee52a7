package resolve_address

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-WizardService/internal/api/handlers"
	"github.com/m04kA/SMC-WizardService/internal/api/middleware"
	resolveAddress "github.com/m04kA/SMC-WizardService/internal/usecase/resolve_address"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные адреса"
	msgSessionNotFound    = "сессия не найдена"
	msgSessionCompleted   = "бронирование уже отправлено"
	msgCityNotSupported   = "к сожалению, мы пока не работаем в этом городе"
	msgAddressNotFound    = "сохраненный адрес не найден"
	msgAuthRequired       = "требуется вход в аккаунт"
	msgSuggestUnavailable = "подсказки адресов временно недоступны"
)

type Handler struct {
	useCase ResolveAddressUseCase
	logger  Logger
}

func NewHandler(useCase ResolveAddressUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// HandleSuggest GET /api/v1/wizard/sessions/{sessionId}/address/suggest?query=...
func (h *Handler) HandleSuggest(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]
	query := r.URL.Query().Get("query")

	result, err := h.useCase.Suggest(r.Context(), &resolveAddress.SuggestRequest{
		SessionID: sessionID,
		Query:     query,
	})
	if err != nil {
		switch {
		case errors.Is(err, resolveAddress.ErrInvalidInput):
			h.logger.Warn("GET /wizard/sessions/{id}/address/suggest - Invalid input: session_id=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		case errors.Is(err, resolveAddress.ErrSessionNotFound):
			h.logger.Warn("GET /wizard/sessions/{id}/address/suggest - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
		case errors.Is(err, resolveAddress.ErrSessionCompleted):
			h.logger.Warn("GET /wizard/sessions/{id}/address/suggest - Session completed: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgSessionCompleted)
		case errors.Is(err, resolveAddress.ErrSuggestUnavailable):
			h.logger.Error("GET /wizard/sessions/{id}/address/suggest - Suggest unavailable: session_id=%s, error=%v", sessionID, err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgSuggestUnavailable)
		default:
			h.logger.Error("GET /wizard/sessions/{id}/address/suggest - Failed to suggest: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromSuggestResponse(result))
}

// HandleResolve POST /api/v1/wizard/sessions/{sessionId}/address/resolve
// Привязывает введенный вручную адрес к городу и району каталога
func (h *Handler) HandleResolve(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req ResolveAddressRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /wizard/sessions/{id}/address/resolve - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Resolve(r.Context(), req.ToUseCaseRequest(sessionID))
	if err != nil {
		h.respondResolveError(w, "resolve", sessionID, err)
		return
	}

	h.logger.Info("POST /wizard/sessions/{id}/address/resolve - Address resolved: session_id=%s, city=%s, area=%q",
		sessionID, result.City.ID, result.Session.Form.SelectedAreaID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// HandleSelectSaved POST /api/v1/wizard/sessions/{sessionId}/address/saved
// Доступно только аутентифицированным пользователям
func (h *Handler) HandleSelectSaved(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /wizard/sessions/{id}/address/saved - Unauthenticated request: session_id=%s", sessionID)
		handlers.RespondUnauthorized(w, msgAuthRequired)
		return
	}

	var req SelectSavedAddressRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /wizard/sessions/{id}/address/saved - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.SelectSaved(r.Context(), &resolveAddress.SelectSavedRequest{
		SessionID: sessionID,
		UserID:    userID,
		AddressID: req.AddressID,
	})
	if err != nil {
		h.respondResolveError(w, "saved", sessionID, err)
		return
	}

	h.logger.Info("POST /wizard/sessions/{id}/address/saved - Saved address selected: session_id=%s, user_id=%d",
		sessionID, userID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

func (h *Handler) respondResolveError(w http.ResponseWriter, op, sessionID string, err error) {
	switch {
	case errors.Is(err, resolveAddress.ErrInvalidInput):
		h.logger.Warn("POST /wizard/sessions/{id}/address/%s - Invalid input: session_id=%s, error=%v", op, sessionID, err)
		handlers.RespondBadRequest(w, msgInvalidInput)
	case errors.Is(err, resolveAddress.ErrSessionNotFound):
		h.logger.Warn("POST /wizard/sessions/{id}/address/%s - Session not found: session_id=%s", op, sessionID)
		handlers.RespondNotFound(w, msgSessionNotFound)
	case errors.Is(err, resolveAddress.ErrSessionCompleted):
		h.logger.Warn("POST /wizard/sessions/{id}/address/%s - Session completed: session_id=%s", op, sessionID)
		handlers.RespondError(w, http.StatusConflict, msgSessionCompleted)
	case errors.Is(err, resolveAddress.ErrCityNotSupported):
		h.logger.Warn("POST /wizard/sessions/{id}/address/%s - City not supported: session_id=%s, error=%v", op, sessionID, err)
		handlers.RespondError(w, http.StatusUnprocessableEntity, msgCityNotSupported)
	case errors.Is(err, resolveAddress.ErrAddressNotFound):
		h.logger.Warn("POST /wizard/sessions/{id}/address/%s - Address not found: session_id=%s", op, sessionID)
		handlers.RespondNotFound(w, msgAddressNotFound)
	case errors.Is(err, resolveAddress.ErrUnauthorized):
		h.logger.Warn("POST /wizard/sessions/{id}/address/%s - Unauthorized: session_id=%s", op, sessionID)
		handlers.RespondUnauthorized(w, msgAuthRequired)
	default:
		h.logger.Error("POST /wizard/sessions/{id}/address/%s - Failed: session_id=%s, error=%v", op, sessionID, err)
		handlers.RespondInternalError(w)
	}
}
