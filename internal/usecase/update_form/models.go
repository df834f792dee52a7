package update_form

import "github.com/m04kA/SMC-WizardService/internal/domain"

// Request модель запроса частичного обновления формы
type Request struct {
	SessionID string
	Update    domain.FormUpdate
}

// Response модель ответа с обновленной сессией
type Response struct {
	Session *domain.WizardSession

	// EstimateScheduled true, если изменение затронуло ценообразующие поля
	// и пересчет стоимости был запланирован
	EstimateScheduled bool
}
