package manage_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-WizardService/internal/domain"
	sessionRepo "github.com/m04kA/SMC-WizardService/internal/infra/storage/session"
)

// UseCase use case управления временными окнами сессии
type UseCase struct {
	sessionRepo  SessionRepository
	txManager    TxManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sessionRepo SessionRepository,
	txManager TxManager,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessionRepo:  sessionRepo,
		txManager:    txManager,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Add добавляет временное окно
// Лимит окон проверяется в serializable-транзакции: параллельные добавления
// не могут превысить его за счет чтения устаревшего списка
func (uc *UseCase) Add(ctx context.Context, req *AddRequest) (*Response, error) {
	// 1. Валидация входных данных
	date, err := validateAddRequest(req, uc.timeProvider.Now())
	if err != nil {
		uc.logger.Warn("ManageSlots: add validation failed: %v", err)
		return nil, err
	}

	slot := domain.TimeSlot{
		Date:      date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}

	var session *domain.WizardSession

	// 2. Читаем, проверяем лимит и пишем в одной транзакции
	txErr := uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		s, err := uc.sessionRepo.GetByID(ctx, req.SessionID)
		if err != nil {
			if errors.Is(err, sessionRepo.ErrSessionNotFound) {
				return ErrSessionNotFound
			}
			return fmt.Errorf("%w: failed to get session: %v", ErrInternal, err)
		}
		if !s.IsActive() {
			return ErrSessionCompleted
		}
		if len(s.Form.TimeSlots) >= domain.MaxTimeSlots {
			return ErrSlotLimitReached
		}
		// Окно должно вмещать уборку целиком по текущей оценке длительности
		if minDur := minDurationMinutes(s.EstimatedHours()); slot.DurationMinutes() < minDur {
			return fmt.Errorf("%w: window is shorter than %d minutes", ErrSlotTooShort, minDur)
		}
		for i := range s.Form.TimeSlots {
			existing := &s.Form.TimeSlots[i]
			if existing.IsSameDay(date) &&
				existing.StartTime == slot.StartTime &&
				existing.EndTime == slot.EndTime {
				return ErrDuplicateSlot
			}
		}

		s.Form.TimeSlots = append(s.Form.TimeSlots, slot)
		if err := uc.sessionRepo.UpdateForm(ctx, req.SessionID, s.Form); err != nil {
			return fmt.Errorf("%w: failed to save form: %v", ErrInternal, err)
		}

		session = s
		return nil
	})
	if txErr != nil {
		if errors.Is(txErr, ErrSessionNotFound) || errors.Is(txErr, ErrSessionCompleted) ||
			errors.Is(txErr, ErrSlotLimitReached) || errors.Is(txErr, ErrDuplicateSlot) ||
			errors.Is(txErr, ErrSlotTooShort) {
			uc.logger.Warn("ManageSlots: add rejected for session=%s: %v", req.SessionID, txErr)
			return nil, txErr
		}
		uc.logger.Error("ManageSlots: add failed for session=%s: %v", req.SessionID, txErr)
		return nil, txErr
	}

	uc.logger.Info("ManageSlots: session=%s slot added, total=%d", req.SessionID, len(session.Form.TimeSlots))

	return &Response{Session: session, Slots: session.Form.TimeSlots}, nil
}

// Remove удаляет временное окно по индексу, сохраняя порядок остальных
func (uc *UseCase) Remove(ctx context.Context, req *RemoveRequest) (*Response, error) {
	if req.SessionID == "" {
		return nil, fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}
	if req.Index < 0 {
		return nil, fmt.Errorf("%w: index must be non-negative", ErrInvalidInput)
	}

	var session *domain.WizardSession

	txErr := uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		s, err := uc.sessionRepo.GetByID(ctx, req.SessionID)
		if err != nil {
			if errors.Is(err, sessionRepo.ErrSessionNotFound) {
				return ErrSessionNotFound
			}
			return fmt.Errorf("%w: failed to get session: %v", ErrInternal, err)
		}
		if !s.IsActive() {
			return ErrSessionCompleted
		}
		if req.Index >= len(s.Form.TimeSlots) {
			return ErrSlotNotFound
		}

		s.Form.TimeSlots = append(s.Form.TimeSlots[:req.Index], s.Form.TimeSlots[req.Index+1:]...)
		if err := uc.sessionRepo.UpdateForm(ctx, req.SessionID, s.Form); err != nil {
			return fmt.Errorf("%w: failed to save form: %v", ErrInternal, err)
		}

		session = s
		return nil
	})
	if txErr != nil {
		if errors.Is(txErr, ErrSessionNotFound) || errors.Is(txErr, ErrSessionCompleted) ||
			errors.Is(txErr, ErrSlotNotFound) {
			uc.logger.Warn("ManageSlots: remove rejected for session=%s: %v", req.SessionID, txErr)
			return nil, txErr
		}
		uc.logger.Error("ManageSlots: remove failed for session=%s: %v", req.SessionID, txErr)
		return nil, txErr
	}

	uc.logger.Info("ManageSlots: session=%s slot removed, total=%d", req.SessionID, len(session.Form.TimeSlots))

	return &Response{Session: session, Slots: session.Form.TimeSlots}, nil
}
