package submit_booking

import "github.com/m04kA/SMC-WizardService/internal/domain"

// Request модель запроса отправки бронирования
type Request struct {
	SessionID string
	UserID    int64
}

// Response результат создания бронирования
type Response struct {
	Session       *domain.WizardSession
	BookingID     int64
	ReferenceCode string
}
