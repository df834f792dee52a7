package get_suggestions

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-WizardService/internal/domain"
	sessionRepo "github.com/m04kA/SMC-WizardService/internal/infra/storage/session"
	"github.com/m04kA/SMC-WizardService/internal/integrations/matchingservice"
)

// UseCase use case подбора кандидатов-клинеров
type UseCase struct {
	sessionRepo    SessionRepository
	matchingClient MatchingServiceClient
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sessionRepo SessionRepository,
	matchingClient MatchingServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessionRepo:    sessionRepo,
		matchingClient: matchingClient,
		logger:         logger,
	}
}

// Execute возвращает отранжированный список кандидатов для выбранной
// локации и временных окон
// При недоступности сервиса подбора возвращается пустой список с флагом
// Degraded: выбор исполнителя опционален и шаг остается проходимым
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.SessionID == "" {
		return nil, fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}

	// 2. Получаем сессию
	session, err := uc.sessionRepo.GetByID(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			uc.logger.Warn("GetSuggestions: session id=%s not found", req.SessionID)
			return nil, ErrSessionNotFound
		}
		uc.logger.Error("GetSuggestions: failed to get session id=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to get session: %v", ErrInternal, err)
	}

	form := session.Form
	if form.SelectedCityID == "" || form.SelectedAreaID == "" || len(form.TimeSlots) == 0 {
		uc.logger.Warn("GetSuggestions: session=%s prerequisites missing", req.SessionID)
		return nil, ErrPrerequisitesMissing
	}

	// 3. Запрашиваем подбор
	matchReq := buildMatchingRequest(session)
	raw, err := uc.matchingClient.GetSuggestions(ctx, matchReq)
	if err != nil {
		uc.logger.Error("GetSuggestions: matching service failed for session=%s: %v", req.SessionID, err)
		return &Response{Suggestions: []SuggestionItem{}, Degraded: true}, nil
	}

	// 4. Обрезаем до максимума, сохраняя порядок ранжирования
	suggestions := make([]domain.CleanerSuggestion, 0, len(raw))
	for i := range raw {
		suggestions = append(suggestions, raw[i].ToDomain())
	}
	suggestions = domain.TruncateSuggestions(suggestions)

	items := make([]SuggestionItem, 0, len(suggestions))
	for _, s := range suggestions {
		items = append(items, SuggestionItem{
			Suggestion: s,
			Badge:      domain.BadgeForStatus(s.AvailabilityStatus),
			IsSelected: s.Cleaner.ID == form.PreferredCleanerID,
		})
	}

	uc.logger.Info("GetSuggestions: session=%s got %d suggestions", req.SessionID, len(items))

	return &Response{Suggestions: items}, nil
}

func buildMatchingRequest(session *domain.WizardSession) *matchingservice.SuggestionsRequest {
	form := session.Form
	slots := make([]matchingservice.RequestSlot, 0, len(form.TimeSlots))
	for i := range form.TimeSlots {
		slot := &form.TimeSlots[i]
		slots = append(slots, matchingservice.RequestSlot{
			Date:      slot.Date.Format(domain.DateFormat),
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
		})
	}

	return &matchingservice.SuggestionsRequest{
		CityID:                 form.SelectedCityID,
		AreaID:                 form.SelectedAreaID,
		TimeSlots:              slots,
		EstimatedDurationHours: session.EstimatedHours(),
	}
}
