package manage_slots

import (
	"github.com/m04kA/SMC-WizardService/internal/domain"
	"github.com/m04kA/SMC-WizardService/pkg/types"
)

// AddRequest модель запроса добавления временного окна
type AddRequest struct {
	SessionID string
	Date      string // YYYY-MM-DD
	StartTime types.TimeString
	EndTime   types.TimeString
}

// RemoveRequest модель запроса удаления временного окна по индексу
type RemoveRequest struct {
	SessionID string
	Index     int
}

// Response модель ответа с актуальным списком слотов
type Response struct {
	Session *domain.WizardSession
	Slots   []domain.TimeSlot
}
