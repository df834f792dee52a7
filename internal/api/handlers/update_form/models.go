package update_form

import (
	"github.com/m04kA/SMC-WizardService/internal/domain"
	sessionModels "github.com/m04kA/SMC-WizardService/internal/service/sessions/models"
	updateForm "github.com/m04kA/SMC-WizardService/internal/usecase/update_form"
)

// UpdateFormRequest HTTP request model: частичное обновление формы,
// заполняются только изменяемые поля
type UpdateFormRequest struct {
	ServiceType         *string                  `json:"serviceType,omitempty"`
	PropertyType        *string                  `json:"propertyType,omitempty"`
	NumRooms            *int                     `json:"numRooms,omitempty"`
	NumBathrooms        *int                     `json:"numBathrooms,omitempty"`
	AreaSqm             *string                  `json:"areaSqm,omitempty"`
	HasPets             *bool                    `json:"hasPets,omitempty"`
	Extras              *[]domain.ExtraSelection `json:"extras,omitempty"`
	SelectedCityID      *string                  `json:"selectedCityId,omitempty"`
	SelectedAreaID      *string                  `json:"selectedAreaId,omitempty"`
	SpecialInstructions *string                  `json:"specialInstructions,omitempty"`
}

// UpdateFormResponse HTTP response model
type UpdateFormResponse struct {
	Session           *sessionModels.SessionResponse `json:"session"`
	EstimateScheduled bool                           `json:"estimateScheduled"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateFormRequest) ToUseCaseRequest(sessionID string) *updateForm.Request {
	return &updateForm.Request{
		SessionID: sessionID,
		Update: domain.FormUpdate{
			ServiceType:         r.ServiceType,
			PropertyType:        r.PropertyType,
			NumRooms:            r.NumRooms,
			NumBathrooms:        r.NumBathrooms,
			AreaSqm:             r.AreaSqm,
			HasPets:             r.HasPets,
			Extras:              r.Extras,
			SelectedCityID:      r.SelectedCityID,
			SelectedAreaID:      r.SelectedAreaID,
			SpecialInstructions: r.SpecialInstructions,
		},
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateForm.Response) *UpdateFormResponse {
	return &UpdateFormResponse{
		Session:           sessionModels.FromDomainSession(resp.Session),
		EstimateScheduled: resp.EstimateScheduled,
	}
}
