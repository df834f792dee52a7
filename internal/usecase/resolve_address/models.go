package resolve_address

import (
	"github.com/m04kA/SMC-WizardService/internal/domain"
	"github.com/m04kA/SMC-WizardService/internal/integrations/geoservice"
)

// SuggestRequest модель запроса автодополнения адреса
type SuggestRequest struct {
	SessionID string
	Query     string
}

// SuggestResponse кандидаты адресов для строки поиска
type SuggestResponse struct {
	Candidates []geoservice.ParsedAddress
}

// ResolveRequest модель запроса привязки введенного вручную адреса
type ResolveRequest struct {
	SessionID string
	Address   domain.FreeformAddress

	// Neighborhood район из выбранного кандидата автодополнения
	// Используется для сопоставления с районами города из каталога
	Neighborhood string
}

// SelectSavedRequest модель запроса выбора сохраненного адреса
type SelectSavedRequest struct {
	SessionID string
	UserID    int64
	AddressID string
}

// Response модель ответа с сессией и результатом привязки
type Response struct {
	Session *domain.WizardSession

	// City и Area - город и район из каталога, к которым привязан адрес
	City *domain.ActiveCity
	Area *domain.CityArea
}
