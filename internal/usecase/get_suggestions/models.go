package get_suggestions

import "github.com/m04kA/SMC-WizardService/internal/domain"

// Request модель запроса кандидатов-клинеров
type Request struct {
	SessionID string
}

// SuggestionItem кандидат с готовым бейджем доступности
type SuggestionItem struct {
	Suggestion domain.CleanerSuggestion
	Badge      domain.AvailabilityBadge
	IsSelected bool
}

// Response модель ответа со списком кандидатов
// Degraded true, если сервис подбора недоступен: шаг остается проходимым,
// список пуст
type Response struct {
	Suggestions []SuggestionItem
	Degraded    bool
}
