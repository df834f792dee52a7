package sessions

import (
	"context"
	"errors"
	"fmt"

	sessionRepo "github.com/m04kA/SMC-WizardService/internal/infra/storage/session"
	"github.com/m04kA/SMC-WizardService/internal/service/sessions/models"
	"github.com/m04kA/SMC-WizardService/pkg/types"
)

// Service сервис чтения и простых операций над сессиями мастера
type Service struct {
	sessionRepo SessionRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса сессий
func NewService(sessionRepo SessionRepository, logger Logger) *Service {
	return &Service{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// GetByID получает представление сессии мастера
func (s *Service) GetByID(ctx context.Context, id string) (*models.SessionResponse, error) {
	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			s.logger.Warn("GetByID: session id=%s not found", id)
			return nil, ErrSessionNotFound
		}
		s.logger.Error("GetByID: repository error for session id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSession(session), nil
}

// SelectCleaner переключает выбор предпочитаемого клинера в сессии
// Повторный выбор текущего клинера или пустой cleanerID сбрасывает выбор
// ("любой исполнитель")
func (s *Service) SelectCleaner(ctx context.Context, id string, cleanerID string, suggestedStartTime types.TimeString) (*models.SessionResponse, error) {
	s.logger.Info("SelectCleaner: session=%s, cleaner=%q", id, cleanerID)

	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			s.logger.Warn("SelectCleaner: session id=%s not found", id)
			return nil, ErrSessionNotFound
		}
		s.logger.Error("SelectCleaner: repository error for session id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: SelectCleaner - repository error: %v", ErrInternal, err)
	}

	if !session.IsActive() {
		s.logger.Warn("SelectCleaner: session id=%s already completed", id)
		return nil, ErrSessionCompleted
	}

	session.Form.SelectCleaner(cleanerID, suggestedStartTime)

	if err := s.sessionRepo.UpdateForm(ctx, id, session.Form); err != nil {
		s.logger.Error("SelectCleaner: failed to update form for session id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: SelectCleaner - update form: %v", ErrInternal, err)
	}

	s.logger.Info("SelectCleaner: session=%s, preferred_cleaner=%q", id, session.Form.PreferredCleanerID)
	return models.FromDomainSession(session), nil
}

// BindUser привязывает анонимную сессию к пользователю
// Вызывается после входа клиента в середине мастера: введенные данные
// сохраняются, а шаг отправки становится доступным
func (s *Service) BindUser(ctx context.Context, id string, userID int64) (*models.SessionResponse, error) {
	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			s.logger.Warn("BindUser: session id=%s not found", id)
			return nil, ErrSessionNotFound
		}
		s.logger.Error("BindUser: repository error for session id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: BindUser - repository error: %v", ErrInternal, err)
	}

	if !session.IsActive() {
		s.logger.Warn("BindUser: session id=%s already completed", id)
		return nil, ErrSessionCompleted
	}

	if session.UserID == nil || *session.UserID != userID {
		if err := s.sessionRepo.BindUser(ctx, id, userID); err != nil {
			s.logger.Error("BindUser: failed to bind session id=%s to user=%d: %v", id, userID, err)
			return nil, fmt.Errorf("%w: BindUser - update session: %v", ErrInternal, err)
		}
		session.UserID = &userID
		s.logger.Info("BindUser: session=%s bound to user=%d", id, userID)
	}

	return models.FromDomainSession(session), nil
}

// Delete удаляет сессию мастера (клиент покинул мастер)
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.sessionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			s.logger.Warn("Delete: session id=%s not found", id)
			return ErrSessionNotFound
		}
		s.logger.Error("Delete: repository error for session id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: session id=%s removed", id)
	return nil
}
