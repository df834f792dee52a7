package get_suggestions

import (
	"github.com/m04kA/SMC-WizardService/internal/domain"
	getSuggestions "github.com/m04kA/SMC-WizardService/internal/usecase/get_suggestions"
)

// CleanerResponse данные клинера
type CleanerResponse struct {
	ID                 string  `json:"id"`
	FullName           string  `json:"fullName"`
	RatingAvg          float64 `json:"ratingAvg"`
	TotalJobsCompleted int     `json:"totalJobsCompleted"`
}

// SuggestionResponse кандидат-клинер с бейджем доступности
type SuggestionResponse struct {
	Cleaner            CleanerResponse          `json:"cleaner"`
	Company            string                   `json:"company"`
	AvailabilityStatus string                   `json:"availabilityStatus"`
	Badge              domain.AvailabilityBadge `json:"badge"`
	AvailableFrom      string                   `json:"availableFrom,omitempty"`
	AvailableTo        string                   `json:"availableTo,omitempty"`
	SuggestedStartTime string                   `json:"suggestedStartTime,omitempty"`
	SuggestedEndTime   string                   `json:"suggestedEndTime,omitempty"`
	SuggestedSlotIndex int                      `json:"suggestedSlotIndex"`
	MatchScore         float64                  `json:"matchScore"`
	IsSelected         bool                     `json:"isSelected"`
}

// SuggestionsResponse HTTP response model
// Degraded true, если сервис подбора недоступен и список пуст
type SuggestionsResponse struct {
	Suggestions []SuggestionResponse `json:"suggestions"`
	Degraded    bool                 `json:"degraded,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSuggestions.Response) *SuggestionsResponse {
	suggestions := make([]SuggestionResponse, 0, len(resp.Suggestions))
	for _, item := range resp.Suggestions {
		s := item.Suggestion
		suggestions = append(suggestions, SuggestionResponse{
			Cleaner: CleanerResponse{
				ID:                 s.Cleaner.ID,
				FullName:           s.Cleaner.FullName,
				RatingAvg:          s.Cleaner.RatingAvg,
				TotalJobsCompleted: s.Cleaner.TotalJobsCompleted,
			},
			Company:            s.Company,
			AvailabilityStatus: string(s.AvailabilityStatus),
			Badge:              item.Badge,
			AvailableFrom:      s.AvailableFrom.String(),
			AvailableTo:        s.AvailableTo.String(),
			SuggestedStartTime: s.SuggestedStartTime.String(),
			SuggestedEndTime:   s.SuggestedEndTime.String(),
			SuggestedSlotIndex: s.SuggestedSlotIndex,
			MatchScore:         s.MatchScore,
			IsSelected:         item.IsSelected,
		})
	}

	return &SuggestionsResponse{
		Suggestions: suggestions,
		Degraded:    resp.Degraded,
	}
}
