package start_session

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-WizardService/internal/api/handlers"
	"github.com/m04kA/SMC-WizardService/internal/api/middleware"
	startSession "github.com/m04kA/SMC-WizardService/internal/usecase/start_session"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgCatalogUnavailable = "каталог услуг временно недоступен, попробуйте позже"
)

type Handler struct {
	useCase StartSessionUseCase
	logger  Logger
}

func NewHandler(useCase StartSessionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/wizard/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req StartSessionRequest
	if r.ContentLength > 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("POST /wizard/sessions - Invalid request body: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
	}

	useCaseReq := &startSession.Request{
		ServiceType: req.ServiceType,
	}
	if userID, ok := middleware.UserIDFromContext(r.Context()); ok {
		useCaseReq.UserID = &userID
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, startSession.ErrCatalogUnavailable):
			h.logger.Error("POST /wizard/sessions - Catalog unavailable: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgCatalogUnavailable)
		default:
			h.logger.Error("POST /wizard/sessions - Failed to start session: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /wizard/sessions - Session started: session_id=%s", result.Session.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
