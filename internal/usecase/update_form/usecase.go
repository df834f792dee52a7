package update_form

import (
	"context"
	"errors"
	"fmt"

	sessionRepo "github.com/m04kA/SMC-WizardService/internal/infra/storage/session"
)

// UseCase use case частичного обновления формы бронирования
// Единственная точка записи пользовательских выборов в форму
type UseCase struct {
	sessionRepo SessionRepository
	estimator   EstimateCoordinator
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sessionRepo SessionRepository,
	estimator EstimateCoordinator,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessionRepo: sessionRepo,
		estimator:   estimator,
		logger:      logger,
	}
}

// Execute применяет частичное обновление формы
// Если изменение затронуло ценообразующие поля и услуга выбрана,
// планируется отложенный пересчет стоимости
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateForm: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем сессию
	session, err := uc.sessionRepo.GetByID(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			uc.logger.Warn("UpdateForm: session id=%s not found", req.SessionID)
			return nil, ErrSessionNotFound
		}
		uc.logger.Error("UpdateForm: failed to get session id=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to get session: %v", ErrInternal, err)
	}

	if !session.IsActive() {
		uc.logger.Warn("UpdateForm: session id=%s already completed", req.SessionID)
		return nil, ErrSessionCompleted
	}

	if err := validateAreaSelection(session, req.Update); err != nil {
		uc.logger.Warn("UpdateForm: session=%s area selection rejected: %v", req.SessionID, err)
		return nil, err
	}

	// 3. Применяем частичное обновление (shallow-merge не-nil полей)
	before := session.Form.PricingSnapshot()
	session.Form.ApplyUpdate(req.Update)
	after := session.Form.PricingSnapshot()

	// 4. Сохраняем форму
	if err := uc.sessionRepo.UpdateForm(ctx, req.SessionID, session.Form); err != nil {
		uc.logger.Error("UpdateForm: failed to save form for session id=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to save form: %v", ErrInternal, err)
	}

	// 5. Изменились ценообразующие поля - планируем пересчет стоимости
	// Координатор сам отбрасывает запросы с пустым serviceType
	scheduled := false
	if !before.Equal(after) && after.ServiceType != "" {
		uc.estimator.Trigger(req.SessionID, after)
		scheduled = true
	}

	uc.logger.Info("UpdateForm: session=%s updated, estimate_scheduled=%t", req.SessionID, scheduled)

	return &Response{
		Session:           session,
		EstimateScheduled: scheduled,
	}, nil
}
