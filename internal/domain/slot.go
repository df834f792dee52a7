package domain

import (
	"time"

	"github.com/m04kA/SMC-WizardService/pkg/types"
)

// TimeSlot временное окно, предложенное клиентом для уборки
// Инвариант endTime >= startTime + минимальная длительность обеспечивается
// генератором вариантов времени в момент создания, а не самим слотом
type TimeSlot struct {
	Date      time.Time        `json:"date"`
	StartTime types.TimeString `json:"startTime"`
	EndTime   types.TimeString `json:"endTime"`
}

// DurationMinutes возвращает длительность окна в минутах
func (s *TimeSlot) DurationMinutes() int {
	start, err := s.StartTime.Minutes()
	if err != nil {
		return 0
	}
	end, err := s.EndTime.Minutes()
	if err != nil {
		return 0
	}
	if end < start {
		return 0
	}
	return end - start
}

// IsSameDay возвращает true, если слот приходится на указанную дату
func (s *TimeSlot) IsSameDay(date time.Time) bool {
	y1, m1, d1 := s.Date.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
