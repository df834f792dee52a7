package select_cleaner

// SelectCleanerRequest HTTP request model
// Пустой cleanerId или повторный выбор текущего клинера сбрасывает выбор
// ("любой исполнитель")
type SelectCleanerRequest struct {
	CleanerID          string `json:"cleanerId"`
	SuggestedStartTime string `json:"suggestedStartTime,omitempty"` // "10:00"
}
