package navigate_step

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-WizardService/internal/domain"
	sessionRepo "github.com/m04kA/SMC-WizardService/internal/infra/storage/session"
)

// UseCase use case навигации по шагам мастера
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

// Execute переводит сессию на соседний шаг
// Переход вперед разрешен только при заполненном текущем шаге,
// переход назад - всегда, с сохранением введенных данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.SessionID == "" {
		return nil, fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}
	if req.Direction != DirectionNext && req.Direction != DirectionBack {
		return nil, fmt.Errorf("%w: unknown direction %q", ErrInvalidInput, req.Direction)
	}

	// 2. Получаем сессию
	session, err := uc.sessionRepo.GetByID(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			uc.logger.Warn("NavigateStep: session id=%s not found", req.SessionID)
			return nil, ErrSessionNotFound
		}
		uc.logger.Error("NavigateStep: failed to get session id=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to get session: %v", ErrInternal, err)
	}

	if !session.IsActive() {
		uc.logger.Warn("NavigateStep: session id=%s already completed", req.SessionID)
		return nil, ErrSessionCompleted
	}

	// 3. Вычисляем целевой шаг
	target, err := uc.resolveTarget(session, req.Direction)
	if err != nil {
		return nil, err
	}

	// 4. Сохраняем новый шаг
	if err := uc.sessionRepo.UpdateStep(ctx, req.SessionID, target); err != nil {
		uc.logger.Error("NavigateStep: failed to update step for session id=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to update step: %v", ErrInternal, err)
	}

	session.CurrentStep = target
	uc.logger.Info("NavigateStep: session=%s moved %s to step=%d", req.SessionID, req.Direction, target)

	return &Response{Session: session}, nil
}

func (uc *UseCase) resolveTarget(session *domain.WizardSession, dir Direction) (domain.Step, error) {
	switch dir {
	case DirectionNext:
		if session.CurrentStep >= domain.LastStep {
			return 0, fmt.Errorf("%w: already at last step", ErrNoFurtherStep)
		}
		if !domain.CanAdvance(session.CurrentStep, session.Form, session.IsAuthenticated()) {
			uc.logger.Warn("NavigateStep: session=%s step=%d is incomplete", session.ID, session.CurrentStep)
			return 0, ErrStepIncomplete
		}
		return session.CurrentStep + 1, nil
	case DirectionBack:
		if session.CurrentStep <= domain.FirstStep {
			return 0, fmt.Errorf("%w: already at first step", ErrNoFurtherStep)
		}
		return session.CurrentStep - 1, nil
	default:
		return 0, fmt.Errorf("%w: unknown direction %q", ErrInvalidInput, dir)
	}
}
