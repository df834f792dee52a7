package manage_slots

import (
	"fmt"
	"math"
	"time"

	"github.com/m04kA/SMC-WizardService/internal/domain"
	"github.com/m04kA/SMC-WizardService/pkg/types"
)

// validateAddRequest валидирует добавляемое временное окно
// Возвращает разобранную дату при успехе
func validateAddRequest(req *AddRequest, now time.Time) (time.Time, error) {
	if req.SessionID == "" {
		return time.Time{}, fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", ErrInvalidInput, req.Date)
	}

	// Сравнение по датам: сегодняшний день допустим
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	if date.Before(today) {
		return time.Time{}, fmt.Errorf("%w: date %s is in the past", ErrInvalidInput, req.Date)
	}

	startMin, err := req.StartTime.Minutes()
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	endMin, err := req.EndTime.Minutes()
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}
	if endMin <= startMin {
		return time.Time{}, fmt.Errorf("%w: endTime must be after startTime", ErrInvalidInput)
	}

	openMin, _ := types.TimeString(domain.DayOpenTime).Minutes()
	lastStartMin, _ := types.TimeString(domain.LastStartTime).Minutes()
	closeMin, _ := types.TimeString(domain.DayCloseTime).Minutes()
	if startMin < openMin || startMin > lastStartMin {
		return time.Time{}, fmt.Errorf("%w: startTime must be between %s and %s",
			ErrInvalidInput, domain.DayOpenTime, domain.LastStartTime)
	}
	if endMin > closeMin {
		return time.Time{}, fmt.Errorf("%w: endTime must not be later than %s",
			ErrInvalidInput, domain.DayCloseTime)
	}

	return date, nil
}

// minDurationMinutes переводит оценку длительности в часах в минимальную
// длительность окна: округление вверх до целого часа
func minDurationMinutes(estimatedHours float64) int {
	if estimatedHours <= 0 {
		return 0
	}
	return int(math.Ceil(estimatedHours)) * 60
}
