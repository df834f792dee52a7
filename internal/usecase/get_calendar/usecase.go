package get_calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	sessionRepo "github.com/m04kA/SMC-WizardService/internal/infra/storage/session"
)

// UseCase use case построения календаря выбора даты
type UseCase struct {
	sessionRepo  SessionRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(sessionRepo SessionRepository, timeProvider TimeProvider, logger Logger) *UseCase {
	return &UseCase{
		sessionRepo:  sessionRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute возвращает календарную сетку запрошенного месяца
// Месяцы раньше текущего недоступны; если год и месяц не заданы,
// возвращается текущий месяц
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.SessionID == "" {
		return nil, fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}
	if (req.Year == 0) != (req.Month == 0) {
		return nil, fmt.Errorf("%w: year and month must be passed together", ErrInvalidInput)
	}
	if req.Month < 0 || req.Month > time.December {
		return nil, fmt.Errorf("%w: month must be in range 1..12", ErrInvalidInput)
	}

	// 2. Получаем сессию (слоты нужны для пометки дней)
	session, err := uc.sessionRepo.GetByID(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			uc.logger.Warn("GetCalendar: session id=%s not found", req.SessionID)
			return nil, ErrSessionNotFound
		}
		uc.logger.Error("GetCalendar: failed to get session id=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to get session: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()
	year, month := req.Year, req.Month
	if year == 0 {
		year, month, _ = now.Date()
	}

	// 3. Месяцы раньше текущего закрыты для навигации
	requested := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	current := monthStart(now)
	if requested.Before(current) {
		uc.logger.Warn("GetCalendar: session=%s requested past month %d-%02d", req.SessionID, year, month)
		return nil, ErrMonthOutOfRange
	}

	days := buildMonthGrid(year, month, now, session.Form.TimeSlots)

	return &Response{
		Year:      year,
		Month:     month,
		Days:      days,
		CanGoPrev: requested.After(current),
	}, nil
}
