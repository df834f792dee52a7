package get_calendar

import (
	"time"

	"github.com/m04kA/SMC-WizardService/internal/domain"
)

// buildMonthGrid строит календарную сетку месяца с неделей от понедельника
// Позиции до первого и после последнего дня месяца заполняются nil,
// итоговая длина всегда кратна 7
func buildMonthGrid(year int, month time.Month, now time.Time, slots []domain.TimeSlot) []*CalendarDay {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	// Понедельник - позиция 0
	leading := (int(first.Weekday()) - int(time.Monday) + 7) % 7

	grid := make([]*CalendarDay, 0, leading+daysInMonth+6)
	for i := 0; i < leading; i++ {
		grid = append(grid, nil)
	}

	today := dateOnly(now)
	for d := 1; d <= daysInMonth; d++ {
		date := time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
		isPast := date.Before(today)
		day := &CalendarDay{
			Date:       date,
			Day:        d,
			IsToday:    date.Equal(today),
			IsPast:     isPast,
			HasSlot:    hasSlotOn(slots, date),
			Selectable: !isPast,
		}
		grid = append(grid, day)
	}

	for len(grid)%7 != 0 {
		grid = append(grid, nil)
	}

	return grid
}

// dateOnly обнуляет время, оставляя календарную дату
// Сравнение "в прошлом" ведется по датам: сегодняшний день доступен
// независимо от времени суток
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func hasSlotOn(slots []domain.TimeSlot, date time.Time) bool {
	for i := range slots {
		if slots[i].IsSameDay(date) {
			return true
		}
	}
	return false
}

// monthStart возвращает первое число месяца, в который попадает t
func monthStart(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}
