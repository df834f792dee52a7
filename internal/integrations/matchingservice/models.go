package matchingservice

import (
	"github.com/m04kA/SMC-WizardService/internal/domain"
	"github.com/m04kA/SMC-WizardService/pkg/types"
)

// SuggestionsRequest запрос подбора кандидатов
type SuggestionsRequest struct {
	CityID                 string        `json:"city_id"`
	AreaID                 string        `json:"area_id"`
	TimeSlots              []RequestSlot `json:"time_slots"`
	EstimatedDurationHours float64       `json:"estimated_duration_hours"`
}

// RequestSlot временное окно в запросе подбора
type RequestSlot struct {
	Date      string `json:"date"` // YYYY-MM-DD
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// SuggestionsResponse ответ сервиса подбора
type SuggestionsResponse struct {
	Suggestions []Suggestion `json:"suggestions"`
}

// Suggestion кандидат-клинер из сервиса подбора
type Suggestion struct {
	Cleaner            Cleaner `json:"cleaner"`
	Company            string  `json:"company"`
	AvailabilityStatus string  `json:"availability_status"`
	AvailableFrom      string  `json:"available_from"`
	AvailableTo        string  `json:"available_to"`
	SuggestedStartTime string  `json:"suggested_start_time"`
	SuggestedEndTime   string  `json:"suggested_end_time"`
	SuggestedSlotIndex int     `json:"suggested_slot_index"`
	MatchScore         float64 `json:"match_score"`
}

// Cleaner данные клинера
type Cleaner struct {
	ID                 string  `json:"id"`
	FullName           string  `json:"full_name"`
	RatingAvg          float64 `json:"rating_avg"`
	TotalJobsCompleted int     `json:"total_jobs_completed"`
}

// ErrorResponse модель ошибки от MatchingService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ToDomain конвертирует кандидата в доменную модель
func (s *Suggestion) ToDomain() domain.CleanerSuggestion {
	return domain.CleanerSuggestion{
		Cleaner: domain.CleanerInfo{
			ID:                 s.Cleaner.ID,
			FullName:           s.Cleaner.FullName,
			RatingAvg:          s.Cleaner.RatingAvg,
			TotalJobsCompleted: s.Cleaner.TotalJobsCompleted,
		},
		Company:            s.Company,
		AvailabilityStatus: domain.AvailabilityStatus(s.AvailabilityStatus),
		AvailableFrom:      types.TimeString(s.AvailableFrom),
		AvailableTo:        types.TimeString(s.AvailableTo),
		SuggestedStartTime: types.TimeString(s.SuggestedStartTime),
		SuggestedEndTime:   types.TimeString(s.SuggestedEndTime),
		SuggestedSlotIndex: s.SuggestedSlotIndex,
		MatchScore:         s.MatchScore,
	}
}
