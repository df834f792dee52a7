package start_session

import (
	"github.com/m04kA/SMC-WizardService/internal/domain"
	sessionModels "github.com/m04kA/SMC-WizardService/internal/service/sessions/models"
	startSession "github.com/m04kA/SMC-WizardService/internal/usecase/start_session"
)

// StartSessionRequest HTTP request model
type StartSessionRequest struct {
	// ServiceType предвыбранная услуга (deep link), опционально
	ServiceType string `json:"serviceType,omitempty"`
}

// StartSessionResponse HTTP response model
type StartSessionResponse struct {
	Session *sessionModels.SessionResponse `json:"session"`
	Catalog *domain.CatalogSnapshot        `json:"catalog"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *startSession.Response) *StartSessionResponse {
	return &StartSessionResponse{
		Session: sessionModels.FromDomainSession(resp.Session),
		Catalog: resp.Catalog,
	}
}
