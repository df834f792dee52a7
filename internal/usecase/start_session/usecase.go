package start_session

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-WizardService/internal/domain"
)

// UseCase use case создания сессии мастера бронирования
type UseCase struct {
	sessionRepo   SessionRepository
	catalogClient CatalogServiceClient
	idGenerator   IDGenerator
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sessionRepo SessionRepository,
	catalogClient CatalogServiceClient,
	idGenerator IDGenerator,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessionRepo:   sessionRepo,
		catalogClient: catalogClient,
		idGenerator:   idGenerator,
		logger:        logger,
	}
}

// Execute выполняет use case создания сессии
// Каталог (услуги, допуслуги, города) запрашивается один раз на сессию
// и сохраняется вместе с ней. Если услуга предвыбрана внешней ссылкой
// и существует в каталоге - мастер стартует сразу с шага параметров жилья
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("StartSession: user=%v, serviceType=%q", req.UserID, req.ServiceType)

	// 1. Запрашиваем снимок каталога
	catalog, err := uc.catalogClient.GetCatalog(ctx)
	if err != nil {
		uc.logger.Error("StartSession: failed to fetch catalog: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	snapshot := catalog.ToDomain()

	// 2. Создаем форму с дефолтными значениями
	form := domain.NewBookingFormState()
	startStep := domain.StepService

	// 3. Deep link: услуга предвыбрана - пропускаем шаг выбора услуги
	if req.ServiceType != "" {
		if snapshot.FindService(req.ServiceType) != nil {
			form.ServiceType = req.ServiceType
			startStep = domain.StepDetails
			uc.logger.Info("StartSession: service %q pre-selected, starting at step %d",
				req.ServiceType, startStep)
		} else {
			uc.logger.Warn("StartSession: pre-selected service %q not found in catalog, ignored",
				req.ServiceType)
		}
	}

	// 4. Сохраняем сессию
	session := &domain.WizardSession{
		ID:          uc.idGenerator.NewID(),
		UserID:      req.UserID,
		CurrentStep: startStep,
		Status:      domain.SessionActive,
		Form:        form,
		Catalog:     snapshot,
	}

	created, err := uc.sessionRepo.Create(ctx, session)
	if err != nil {
		uc.logger.Error("StartSession: failed to create session: %v", err)
		return nil, fmt.Errorf("%w: failed to create session: %v", ErrInternal, err)
	}

	uc.logger.Info("StartSession: created session id=%s at step %d", created.ID, created.CurrentStep)

	return &Response{
		Session: created,
		Catalog: snapshot,
	}, nil
}
