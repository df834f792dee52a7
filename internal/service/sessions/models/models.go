package models

import (
	"time"

	"github.com/m04kA/SMC-WizardService/internal/domain"
)

// SessionResponse представление сессии мастера для API
type SessionResponse struct {
	ID            string                   `json:"id"`
	CurrentStep   int                      `json:"currentStep"`
	Status        string                   `json:"status"`
	ReferenceCode *string                  `json:"referenceCode,omitempty"`
	CanContinue   bool                     `json:"canContinue"`
	Form          *domain.BookingFormState `json:"form"`
	Estimate      *domain.PriceEstimate    `json:"estimate,omitempty"`
	CreatedAt     time.Time                `json:"createdAt"`
	UpdatedAt     time.Time                `json:"updatedAt"`
}

// FromDomainSession собирает представление сессии
// CanContinue вычисляется заново при каждом чтении - гейт шагов не имеет памяти
func FromDomainSession(s *domain.WizardSession) *SessionResponse {
	return &SessionResponse{
		ID:            s.ID,
		CurrentStep:   int(s.CurrentStep),
		Status:        string(s.Status),
		ReferenceCode: s.ReferenceCode,
		CanContinue:   domain.CanAdvance(s.CurrentStep, s.Form, s.IsAuthenticated()),
		Form:          s.Form,
		Estimate:      s.LatestEstimate,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}
