package manage_slots

import (
	"github.com/m04kA/SMC-WizardService/internal/domain"
	sessionModels "github.com/m04kA/SMC-WizardService/internal/service/sessions/models"
	manageSlots "github.com/m04kA/SMC-WizardService/internal/usecase/manage_slots"
	"github.com/m04kA/SMC-WizardService/pkg/types"
)

// AddSlotRequest HTTP request model
type AddSlotRequest struct {
	Date      string `json:"date"`      // "2026-09-15"
	StartTime string `json:"startTime"` // "10:00"
	EndTime   string `json:"endTime"`   // "13:00"
}

// SlotResponse временное окно в ответе
type SlotResponse struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Session *sessionModels.SessionResponse `json:"session"`
	Slots   []SlotResponse                 `json:"slots"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *AddSlotRequest) ToUseCaseRequest(sessionID string) *manageSlots.AddRequest {
	return &manageSlots.AddRequest{
		SessionID: sessionID,
		Date:      r.Date,
		StartTime: types.TimeString(r.StartTime),
		EndTime:   types.TimeString(r.EndTime),
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *manageSlots.Response) *SlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for i := range resp.Slots {
		slot := &resp.Slots[i]
		slots = append(slots, SlotResponse{
			Date:      slot.Date.Format(domain.DateFormat),
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
		})
	}

	return &SlotsResponse{
		Session: sessionModels.FromDomainSession(resp.Session),
		Slots:   slots,
	}
}
