package domain

import "github.com/m04kA/SMC-WizardService/pkg/types"

// AvailabilityStatus статус доступности клинера для выбранных окон
type AvailabilityStatus string

const (
	AvailabilityAvailable   AvailabilityStatus = "available"
	AvailabilityPartial     AvailabilityStatus = "partial"
	AvailabilityUnavailable AvailabilityStatus = "unavailable"
	AvailabilityBusy        AvailabilityStatus = "busy"
)

// CleanerInfo данные клинера из сервиса подбора
type CleanerInfo struct {
	ID                string  `json:"id"`
	FullName          string  `json:"fullName"`
	RatingAvg         float64 `json:"ratingAvg"`
	TotalJobsCompleted int    `json:"totalJobsCompleted"`
}

// CleanerSuggestion кандидат-исполнитель, отранжированный сервисом подбора
// Мастер только фильтрует, сортирует и хранит выбор - matchScore и
// доступность вычисляет внешний сервис
type CleanerSuggestion struct {
	Cleaner            CleanerInfo        `json:"cleaner"`
	Company            string             `json:"company"`
	AvailabilityStatus AvailabilityStatus `json:"availabilityStatus"`
	AvailableFrom      types.TimeString   `json:"availableFrom"`
	AvailableTo        types.TimeString   `json:"availableTo"`
	SuggestedStartTime types.TimeString   `json:"suggestedStartTime"`
	SuggestedEndTime   types.TimeString   `json:"suggestedEndTime"`
	SuggestedSlotIndex int                `json:"suggestedSlotIndex"`
	MatchScore         float64            `json:"matchScore"`
}

// AvailabilityBadge бейдж статуса доступности для отображения
type AvailabilityBadge struct {
	Label string `json:"label"`
	Style string `json:"style"`
}

// BadgeForStatus возвращает бейдж для статуса доступности
// Неизвестные статусы получают нейтральный бейдж
func BadgeForStatus(status AvailabilityStatus) AvailabilityBadge {
	switch status {
	case AvailabilityAvailable:
		return AvailabilityBadge{Label: "свободен", Style: "success"}
	case AvailabilityPartial:
		return AvailabilityBadge{Label: "частично занят", Style: "warning"}
	case AvailabilityUnavailable, AvailabilityBusy:
		return AvailabilityBadge{Label: "занят", Style: "danger"}
	default:
		return AvailabilityBadge{Label: "неизвестно", Style: "default"}
	}
}

// TruncateSuggestions обрезает список кандидатов до максимума,
// сохраняя порядок ранжирования внешнего сервиса
func TruncateSuggestions(suggestions []CleanerSuggestion) []CleanerSuggestion {
	if len(suggestions) <= MaxSuggestions {
		return suggestions
	}
	return suggestions[:MaxSuggestions]
}
