package get_slot_options

import (
	"math"

	"github.com/m04kA/SMC-WizardService/internal/domain"
	"github.com/m04kA/SMC-WizardService/pkg/types"
)

// buildStartTimes возвращает сетку времен начала с шагом полчаса
// от открытия рабочего дня до последнего возможного старта включительно
func buildStartTimes() []types.TimeString {
	open, _ := types.TimeString(domain.DayOpenTime).Minutes()
	last, _ := types.TimeString(domain.LastStartTime).Minutes()

	options := make([]types.TimeString, 0, (last-open)/domain.SlotStepMinutes+1)
	for m := open; m <= last; m += domain.SlotStepMinutes {
		ts, err := types.NewTimeStringFromMinutes(m)
		if err != nil {
			break
		}
		options = append(options, ts)
	}
	return options
}

// buildEndTimes возвращает варианты окончания для выбранного начала:
// от start + минимальная длительность до закрытия рабочего дня включительно,
// с шагом полчаса. Может вернуть пустой список, если окно не помещается
func buildEndTimes(start types.TimeString, minDurationMinutes int) ([]types.TimeString, error) {
	startMin, err := start.Minutes()
	if err != nil {
		return nil, err
	}
	close, _ := types.TimeString(domain.DayCloseTime).Minutes()

	// Без оценки длительности первый вариант - следующая получасовая
	// отметка: окно нулевой длины добавить нельзя
	first := startMin + minDurationMinutes
	if minDurationMinutes == 0 {
		first = startMin + domain.SlotStepMinutes
	}

	options := []types.TimeString{}
	for m := first; m <= close; m += domain.SlotStepMinutes {
		ts, err := types.NewTimeStringFromMinutes(m)
		if err != nil {
			break
		}
		options = append(options, ts)
	}
	return options, nil
}

// minDurationMinutes переводит оценку длительности в часах в минимальную
// длительность окна: округление вверх до целого часа
func minDurationMinutes(estimatedHours float64) int {
	if estimatedHours <= 0 {
		return 0
	}
	return int(math.Ceil(estimatedHours)) * 60
}
