package resolve_address

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-WizardService/internal/domain"
	sessionRepo "github.com/m04kA/SMC-WizardService/internal/infra/storage/session"
	"github.com/m04kA/SMC-WizardService/internal/integrations/userservice"
)

// UseCase use case работы с адресом: автодополнение, привязка введенного
// вручную адреса к городу/району каталога, выбор сохраненного адреса
type UseCase struct {
	sessionRepo SessionRepository
	geoClient   GeoServiceClient
	userClient  UserServiceClient
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sessionRepo SessionRepository,
	geoClient GeoServiceClient,
	userClient UserServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessionRepo: sessionRepo,
		geoClient:   geoClient,
		userClient:  userClient,
		logger:      logger,
	}
}

// Suggest возвращает кандидатов адресов по строке поиска
func (uc *UseCase) Suggest(ctx context.Context, req *SuggestRequest) (*SuggestResponse, error) {
	if req.SessionID == "" {
		return nil, fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Query) == "" {
		return nil, fmt.Errorf("%w: query is required", ErrInvalidInput)
	}

	if _, err := uc.getActiveSession(ctx, req.SessionID); err != nil {
		return nil, err
	}

	candidates, err := uc.geoClient.SuggestAddresses(ctx, req.Query)
	if err != nil {
		uc.logger.Error("ResolveAddress: suggest failed for session=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: %v", ErrSuggestUnavailable, err)
	}

	return &SuggestResponse{Candidates: candidates}, nil
}

// Resolve привязывает введенный вручную адрес к городу и району каталога
// Город сверяется без учета регистра и диакритики; при отсутствии города
// в каталоге возвращается ErrCityNotSupported
func (uc *UseCase) Resolve(ctx context.Context, req *ResolveRequest) (*Response, error) {
	if req.SessionID == "" {
		return nil, fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Address.StreetAddress) == "" {
		return nil, fmt.Errorf("%w: streetAddress is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Address.City) == "" {
		return nil, fmt.Errorf("%w: city is required", ErrInvalidInput)
	}

	session, err := uc.getActiveSession(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}

	city := matchCity(session.Catalog, req.Address.City)
	if city == nil {
		uc.logger.Warn("ResolveAddress: session=%s city %q is not supported", req.SessionID, req.Address.City)
		return nil, fmt.Errorf("%w: %s", ErrCityNotSupported, req.Address.City)
	}

	// Район может остаться неопределенным: тогда клиент выбирает его
	// вручную из списка районов города
	areaID := ""
	area := matchArea(city, req.Neighborhood)
	if area != nil {
		areaID = area.ID
	}

	session.Form.SetFreeformAddress(req.Address, city.ID, areaID)
	if err := uc.sessionRepo.UpdateForm(ctx, req.SessionID, session.Form); err != nil {
		uc.logger.Error("ResolveAddress: failed to save form for session=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to save form: %v", ErrInternal, err)
	}

	uc.logger.Info("ResolveAddress: session=%s resolved to city=%s area=%q", req.SessionID, city.ID, areaID)

	return &Response{Session: session, City: city, Area: area}, nil
}

// SelectSaved выбирает сохраненный адрес пользователя
// Доступно только для сессий, привязанных к пользователю
func (uc *UseCase) SelectSaved(ctx context.Context, req *SelectSavedRequest) (*Response, error) {
	if req.SessionID == "" {
		return nil, fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}
	if req.AddressID == "" {
		return nil, fmt.Errorf("%w: addressID is required", ErrInvalidInput)
	}

	session, err := uc.getActiveSession(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}

	if !session.IsAuthenticated() || *session.UserID != req.UserID {
		uc.logger.Warn("ResolveAddress: session=%s is not bound to user=%d", req.SessionID, req.UserID)
		return nil, ErrUnauthorized
	}

	saved, err := uc.userClient.GetSavedAddress(ctx, req.UserID, req.AddressID)
	if err != nil {
		if errors.Is(err, userservice.ErrAddressNotFound) {
			uc.logger.Warn("ResolveAddress: saved address id=%s not found for user=%d", req.AddressID, req.UserID)
			return nil, ErrAddressNotFound
		}
		uc.logger.Error("ResolveAddress: failed to get saved address id=%s: %v", req.AddressID, err)
		return nil, fmt.Errorf("%w: failed to get saved address: %v", ErrInternal, err)
	}

	city := matchCity(session.Catalog, saved.City)
	if city == nil {
		uc.logger.Warn("ResolveAddress: session=%s saved address city %q is not supported", req.SessionID, saved.City)
		return nil, fmt.Errorf("%w: %s", ErrCityNotSupported, saved.City)
	}

	// У сохраненного адреса района нет: берется первый район города
	if len(city.Areas) == 0 {
		return nil, fmt.Errorf("%w: city %s has no serviceable areas", ErrCityNotSupported, city.Name)
	}
	area := &city.Areas[0]

	session.Form.SetSavedAddress(saved.ID, city.ID, area.ID)
	if err := uc.sessionRepo.UpdateForm(ctx, req.SessionID, session.Form); err != nil {
		uc.logger.Error("ResolveAddress: failed to save form for session=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to save form: %v", ErrInternal, err)
	}

	uc.logger.Info("ResolveAddress: session=%s selected saved address=%s city=%s", req.SessionID, saved.ID, city.ID)

	return &Response{Session: session, City: city, Area: area}, nil
}

func (uc *UseCase) getActiveSession(ctx context.Context, sessionID string) (*domain.WizardSession, error) {
	session, err := uc.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			uc.logger.Warn("ResolveAddress: session id=%s not found", sessionID)
			return nil, ErrSessionNotFound
		}
		uc.logger.Error("ResolveAddress: failed to get session id=%s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: failed to get session: %v", ErrInternal, err)
	}
	if !session.IsActive() {
		return nil, ErrSessionCompleted
	}
	return session, nil
}
