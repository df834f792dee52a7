package get_calendar

import "time"

// Request модель запроса календарной сетки на месяц
type Request struct {
	SessionID string
	Year      int
	Month     time.Month
}

// CalendarDay день месяца в календарной сетке
type CalendarDay struct {
	Date       time.Time
	Day        int
	IsToday    bool
	IsPast     bool
	HasSlot    bool
	Selectable bool
}

// Response календарная сетка месяца
// Days выровнен по неделям с понедельника: ведущие и замыкающие
// позиции заполнены nil, длина кратна 7
type Response struct {
	Year  int
	Month time.Month
	Days  []*CalendarDay

	// CanGoPrev false для текущего месяца: навигация в прошлое закрыта
	CanGoPrev bool
}
