package submit_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-WizardService/internal/domain"
	sessionRepo "github.com/m04kA/SMC-WizardService/internal/infra/storage/session"
	"github.com/m04kA/SMC-WizardService/internal/integrations/bookingservice"
	"github.com/m04kA/SMC-WizardService/pkg/ptr"
)

// UseCase use case отправки бронирования
type UseCase struct {
	sessionRepo   SessionRepository
	bookingClient BookingServiceClient
	txManager     TxManager
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sessionRepo SessionRepository,
	bookingClient BookingServiceClient,
	txManager TxManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessionRepo:   sessionRepo,
		bookingClient: bookingClient,
		txManager:     txManager,
		logger:        logger,
	}
}

// Execute создает бронирование из заполненной формы
// При отказе BookingService сессия остается активной и данные формы
// сохраняются; успешная отправка переводит сессию в confirmed
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.SessionID == "" {
		return nil, fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}
	if req.UserID <= 0 {
		return nil, ErrUnauthorized
	}

	// 2. Получаем сессию и проверяем готовность формы
	session, err := uc.sessionRepo.GetByID(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			uc.logger.Warn("SubmitBooking: session id=%s not found", req.SessionID)
			return nil, ErrSessionNotFound
		}
		uc.logger.Error("SubmitBooking: failed to get session id=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to get session: %v", ErrInternal, err)
	}

	if session.IsConfirmed() {
		uc.logger.Warn("SubmitBooking: session id=%s already submitted", req.SessionID)
		return nil, ErrAlreadySubmitted
	}
	if !session.IsAuthenticated() || *session.UserID != req.UserID {
		uc.logger.Warn("SubmitBooking: session=%s is not bound to user=%d", req.SessionID, req.UserID)
		return nil, ErrUnauthorized
	}
	if err := validateFormComplete(session); err != nil {
		uc.logger.Warn("SubmitBooking: session=%s form incomplete: %v", req.SessionID, err)
		return nil, err
	}

	// 3. Создаем бронирование во внешнем сервисе
	bookingReq := buildBookingRequest(session, req.UserID)
	created, err := uc.bookingClient.CreateBooking(ctx, bookingReq)
	if err != nil {
		if errors.Is(err, bookingservice.ErrRejected) {
			uc.logger.Warn("SubmitBooking: booking rejected for session=%s: %v", req.SessionID, err)
			return nil, fmt.Errorf("%w: %v", ErrBookingRejected, err)
		}
		uc.logger.Error("SubmitBooking: failed to create booking for session=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	// 4. Фиксируем терминальный статус
	// Повторная отправка после гонки упрется в guarded UPDATE по status=active
	txErr := uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		if err := uc.sessionRepo.MarkConfirmed(ctx, req.SessionID, created.ReferenceCode); err != nil {
			if errors.Is(err, sessionRepo.ErrSessionNotFound) {
				return ErrAlreadySubmitted
			}
			return fmt.Errorf("%w: failed to confirm session: %v", ErrInternal, err)
		}
		return nil
	})
	if txErr != nil {
		// Бронирование уже создано - об этом обязан узнать оператор
		uc.logger.Error("SubmitBooking: booking id=%d created but session=%s not confirmed: %v",
			created.ID, req.SessionID, txErr)
		return nil, txErr
	}

	session.Status = domain.SessionConfirmed
	session.ReferenceCode = ptr.Ptr(created.ReferenceCode)

	uc.logger.Info("SubmitBooking: session=%s confirmed, booking id=%d ref=%s",
		req.SessionID, created.ID, created.ReferenceCode)

	return &Response{
		Session:       session,
		BookingID:     created.ID,
		ReferenceCode: created.ReferenceCode,
	}, nil
}

// validateFormComplete проверяет готовность всех обязательных шагов
func validateFormComplete(session *domain.WizardSession) error {
	for step := domain.FirstStep; step < domain.StepSummary; step++ {
		if !domain.CanAdvance(step, session.Form, session.IsAuthenticated()) {
			return fmt.Errorf("%w: step %d is incomplete", ErrFormIncomplete, step)
		}
	}
	return nil
}

// buildBookingRequest собирает заявку из формы сессии
// Адрес уходит ссылкой на сохраненный ИЛИ inline-объектом, но не обоими
func buildBookingRequest(session *domain.WizardSession, userID int64) *bookingservice.CreateBookingRequest {
	form := session.Form

	extras := make([]bookingservice.BookingExtra, 0, len(form.Extras))
	for _, e := range form.Extras {
		extras = append(extras, bookingservice.BookingExtra{
			ExtraID:  e.ExtraID,
			Quantity: e.Quantity,
		})
	}

	slots := make([]bookingservice.BookingSlot, 0, len(form.TimeSlots))
	for i := range form.TimeSlots {
		slot := &form.TimeSlots[i]
		slots = append(slots, bookingservice.BookingSlot{
			Date:      slot.Date.Format(domain.DateFormat),
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
		})
	}

	req := &bookingservice.CreateBookingRequest{
		UserID:              userID,
		ServiceType:         form.ServiceType,
		PropertyType:        form.PropertyType,
		NumRooms:            form.NumRooms,
		NumBathrooms:        form.NumBathrooms,
		AreaSqm:             form.ParsedAreaSqm(),
		HasPets:             form.HasPets,
		Extras:              extras,
		TimeSlots:           slots,
		CityID:              form.SelectedCityID,
		AreaID:              form.SelectedAreaID,
		SpecialInstructions: form.SpecialInstructions,
	}

	switch form.Address.Kind {
	case domain.AddressKindSaved:
		req.AddressID = ptr.Ptr(form.Address.SavedAddressID)
	case domain.AddressKindFreeform:
		ff := form.Address.Freeform
		req.Address = &bookingservice.BookingAddress{
			StreetAddress: ff.StreetAddress,
			City:          ff.City,
			County:        ff.County,
			Floor:         ff.Floor,
			Apartment:     ff.Apartment,
			Latitude:      ff.Latitude,
			Longitude:     ff.Longitude,
		}
	}

	if form.PreferredCleanerID != "" {
		req.PreferredCleanerID = ptr.Ptr(form.PreferredCleanerID)
		if form.SuggestedStartTime != "" {
			req.SuggestedStartTime = ptr.Ptr(form.SuggestedStartTime.String())
		}
	}

	return req
}
