package navigate_step

import "github.com/m04kA/SMC-WizardService/internal/domain"

// Direction направление перехода по шагам мастера
type Direction string

const (
	DirectionNext Direction = "next"
	DirectionBack Direction = "back"
)

// Request модель запроса перехода по шагам
type Request struct {
	SessionID string
	Direction Direction
}

// Response модель ответа с сессией на новом шаге
type Response struct {
	Session *domain.WizardSession
}
