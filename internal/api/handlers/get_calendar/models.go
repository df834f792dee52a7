package get_calendar

import (
	"github.com/m04kA/SMC-WizardService/internal/domain"
	getCalendar "github.com/m04kA/SMC-WizardService/internal/usecase/get_calendar"
)

// CalendarDayResponse день месяца в календарной сетке
type CalendarDayResponse struct {
	Date       string `json:"date"` // YYYY-MM-DD
	Day        int    `json:"day"`
	IsToday    bool   `json:"isToday"`
	IsPast     bool   `json:"isPast"`
	HasSlot    bool   `json:"hasSlot"`
	Selectable bool   `json:"selectable"`
}

// CalendarResponse HTTP response model
// Days выровнен по неделям с понедельника, пустые позиции - null
type CalendarResponse struct {
	Year      int                    `json:"year"`
	Month     int                    `json:"month"`
	Days      []*CalendarDayResponse `json:"days"`
	CanGoPrev bool                   `json:"canGoPrev"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendar.Response) *CalendarResponse {
	days := make([]*CalendarDayResponse, len(resp.Days))
	for i, d := range resp.Days {
		if d == nil {
			continue
		}
		days[i] = &CalendarDayResponse{
			Date:       d.Date.Format(domain.DateFormat),
			Day:        d.Day,
			IsToday:    d.IsToday,
			IsPast:     d.IsPast,
			HasSlot:    d.HasSlot,
			Selectable: d.Selectable,
		}
	}

	return &CalendarResponse{
		Year:      resp.Year,
		Month:     int(resp.Month),
		Days:      days,
		CanGoPrev: resp.CanGoPrev,
	}
}
