package navigate_step

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена
	ErrSessionNotFound = errors.New("navigate_step: session not found")

	// ErrSessionCompleted возвращается при попытке навигации в завершенной сессии
	ErrSessionCompleted = errors.New("navigate_step: session already completed")

	// ErrStepIncomplete возвращается, когда текущий шаг не заполнен
	// и переход вперед невозможен
	ErrStepIncomplete = errors.New("navigate_step: current step is incomplete")

	// ErrNoFurtherStep возвращается при попытке уйти за границы мастера
	ErrNoFurtherStep = errors.New("navigate_step: no further step in this direction")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("navigate_step: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("navigate_step: internal error")
)
