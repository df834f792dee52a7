package start_session

import "github.com/m04kA/SMC-WizardService/internal/domain"

// Request модель запроса на создание сессии мастера
type Request struct {
	UserID      *int64 // ID пользователя, если клиент аутентифицирован
	ServiceType string // Предвыбранная услуга (deep link), опционально
}

// Response модель ответа с созданной сессией
type Response struct {
	Session *domain.WizardSession
	Catalog *domain.CatalogSnapshot
}
