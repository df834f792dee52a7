package submit_booking

import (
	sessionModels "github.com/m04kA/SMC-WizardService/internal/service/sessions/models"
	submitBooking "github.com/m04kA/SMC-WizardService/internal/usecase/submit_booking"
)

// SubmitBookingResponse HTTP response model
type SubmitBookingResponse struct {
	Session       *sessionModels.SessionResponse `json:"session"`
	BookingID     int64                          `json:"bookingId"`
	ReferenceCode string                         `json:"referenceCode"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitBooking.Response) *SubmitBookingResponse {
	return &SubmitBookingResponse{
		Session:       sessionModels.FromDomainSession(resp.Session),
		BookingID:     resp.BookingID,
		ReferenceCode: resp.ReferenceCode,
	}
}
