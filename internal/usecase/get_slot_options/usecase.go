package get_slot_options

import (
	"context"
	"errors"
	"fmt"

	sessionRepo "github.com/m04kA/SMC-WizardService/internal/infra/storage/session"
	"github.com/m04kA/SMC-WizardService/pkg/types"
)

// UseCase use case генерации вариантов времени для слота
type UseCase struct {
	sessionRepo SessionRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(sessionRepo SessionRepository, logger Logger) *UseCase {
	return &UseCase{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// Execute возвращает варианты времени начала и, при переданном начале,
// варианты окончания с учетом оценки длительности уборки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.SessionID == "" {
		return nil, fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}
	if req.StartTime != "" {
		if _, err := req.StartTime.Minutes(); err != nil {
			return nil, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
		}
	}

	// 2. Получаем сессию (оценка длительности определяет варианты окончания)
	session, err := uc.sessionRepo.GetByID(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			uc.logger.Warn("GetSlotOptions: session id=%s not found", req.SessionID)
			return nil, ErrSessionNotFound
		}
		uc.logger.Error("GetSlotOptions: failed to get session id=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to get session: %v", ErrInternal, err)
	}

	minDuration := minDurationMinutes(session.EstimatedHours())

	resp := &Response{
		StartTimes:         buildStartTimes(),
		EndTimes:           []types.TimeString{},
		MinDurationMinutes: minDuration,
	}

	// 3. Варианты окончания строятся только для выбранного начала
	if req.StartTime != "" {
		endTimes, err := buildEndTimes(req.StartTime, minDuration)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
		}
		resp.EndTimes = endTimes
	}

	return resp, nil
}
