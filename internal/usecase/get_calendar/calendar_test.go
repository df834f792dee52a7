package get_calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WizardService/internal/domain"
)

func TestBuildMonthGrid_WeekAlignment(t *testing.T) {
	now := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		year        int
		month       time.Month
		daysInMonth int
		leading     int // 1 сентября 2026 - вторник и т.д.
	}{
		{"september 2026 starts tuesday", 2026, time.September, 30, 1},
		{"november 2026 starts sunday", 2026, time.November, 30, 6},
		{"february 2027 starts monday", 2027, time.February, 28, 0},
		{"december 2026 31 days", 2026, time.December, 31, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := buildMonthGrid(tt.year, tt.month, now, nil)

			// Длина кратна 7
			assert.Zero(t, len(grid)%7)

			// Ведущие позиции до первого дня месяца пусты
			for i := 0; i < tt.leading; i++ {
				assert.Nil(t, grid[i])
			}

			// Количество непустых ячеек равно числу дней месяца
			nonNil := 0
			for _, day := range grid {
				if day != nil {
					nonNil++
				}
			}
			assert.Equal(t, tt.daysInMonth, nonNil)

			// Первый день месяца стоит сразу после ведущих позиций
			require.NotNil(t, grid[tt.leading])
			assert.Equal(t, 1, grid[tt.leading].Day)
		})
	}
}

func TestBuildMonthGrid_PastAndToday(t *testing.T) {
	// Середина месяца, вторая половина дня: сегодняшний день все еще доступен
	now := time.Date(2026, time.September, 15, 18, 45, 0, 0, time.UTC)

	grid := buildMonthGrid(2026, time.September, now, nil)

	for _, day := range grid {
		if day == nil {
			continue
		}
		switch {
		case day.Day < 15:
			assert.True(t, day.IsPast, "day %d must be past", day.Day)
			assert.False(t, day.Selectable, "day %d must not be selectable", day.Day)
		case day.Day == 15:
			assert.True(t, day.IsToday)
			assert.False(t, day.IsPast)
			assert.True(t, day.Selectable)
		default:
			assert.False(t, day.IsPast, "day %d must not be past", day.Day)
			assert.True(t, day.Selectable)
		}
	}
}

func TestBuildMonthGrid_MarksDaysWithSlots(t *testing.T) {
	now := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	slots := []domain.TimeSlot{
		{Date: time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC), StartTime: "10:00", EndTime: "13:00"},
		{Date: time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC), StartTime: "15:00", EndTime: "18:00"},
		{Date: time.Date(2026, time.October, 2, 0, 0, 0, 0, time.UTC), StartTime: "09:00", EndTime: "12:00"},
	}

	grid := buildMonthGrid(2026, time.September, now, slots)

	for _, day := range grid {
		if day == nil {
			continue
		}
		if day.Day == 10 {
			assert.True(t, day.HasSlot)
		} else {
			assert.False(t, day.HasSlot, "day %d must not be marked", day.Day)
		}
	}
}
