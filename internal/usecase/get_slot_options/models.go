package get_slot_options

import "github.com/m04kA/SMC-WizardService/pkg/types"

// Request модель запроса вариантов времени
// StartTime опционален: без него возвращаются только варианты начала
type Request struct {
	SessionID string
	StartTime types.TimeString
}

// Response варианты времени начала и окончания уборки
// EndTimes пуст, если StartTime не передан или после него не помещается
// ни одно окно достаточной длительности
type Response struct {
	StartTimes []types.TimeString
	EndTimes   []types.TimeString

	// MinDurationMinutes минимальная длительность окна, на которой
	// построены варианты окончания
	MinDurationMinutes int
}
