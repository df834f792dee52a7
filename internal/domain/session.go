package domain

import "time"

// SessionStatus статус сессии мастера бронирования
type SessionStatus string

const (
	// SessionActive сессия в процессе заполнения
	SessionActive SessionStatus = "active"

	// SessionConfirmed бронирование успешно создано - терминальное состояние
	SessionConfirmed SessionStatus = "confirmed"
)

// WizardSession сессия мастера бронирования
// Создается при входе клиента в мастер, завершается созданием бронирования
// Единственный владелец BookingFormState
type WizardSession struct {
	ID            string
	UserID        *int64
	CurrentStep   Step
	Status        SessionStatus
	ReferenceCode *string

	Form    *BookingFormState
	Catalog *CatalogSnapshot

	// LatestEstimate последний принятый расчет стоимости
	// EstimateSeq монотонный счетчик запросов пересчета: запись с меньшим
	// номером не может перезаписать более новую
	LatestEstimate *PriceEstimate
	EstimateSeq    uint64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAuthenticated возвращает true, если сессия привязана к пользователю
func (s *WizardSession) IsAuthenticated() bool {
	return s.UserID != nil && *s.UserID > 0
}

// IsActive возвращает true, если сессия еще заполняется
func (s *WizardSession) IsActive() bool {
	return s.Status == SessionActive
}

// IsConfirmed возвращает true, если бронирование уже создано
func (s *WizardSession) IsConfirmed() bool {
	return s.Status == SessionConfirmed
}

// EstimatedHours возвращает оценку длительности уборки в часах:
// из последнего расчета стоимости, иначе - минимальную длительность услуги,
// иначе 0
func (s *WizardSession) EstimatedHours() float64 {
	if s.LatestEstimate != nil && s.LatestEstimate.EstimatedHours > 0 {
		return s.LatestEstimate.EstimatedHours
	}
	if s.Catalog != nil && s.Form != nil {
		if svc := s.Catalog.FindService(s.Form.ServiceType); svc != nil {
			return svc.MinHours
		}
	}
	return 0
}
