package submit_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WizardService/internal/domain"
	sessionRepo "github.com/m04kA/SMC-WizardService/internal/infra/storage/session"
	"github.com/m04kA/SMC-WizardService/internal/integrations/bookingservice"
	"github.com/m04kA/SMC-WizardService/pkg/ptr"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeSessionRepo struct {
	sessions  map[string]*domain.WizardSession
	confirmed map[string]string // sessionID -> referenceCode
}

func newFakeSessionRepo(sessions ...*domain.WizardSession) *fakeSessionRepo {
	repo := &fakeSessionRepo{
		sessions:  make(map[string]*domain.WizardSession),
		confirmed: make(map[string]string),
	}
	for _, s := range sessions {
		repo.sessions[s.ID] = s
	}
	return repo
}

func (f *fakeSessionRepo) GetByID(ctx context.Context, id string) (*domain.WizardSession, error) {
	s, ok := f.sessions[id]
	if !ok {
		return nil, sessionRepo.ErrSessionNotFound
	}
	return s, nil
}

func (f *fakeSessionRepo) MarkConfirmed(ctx context.Context, id string, referenceCode string) error {
	s, ok := f.sessions[id]
	if !ok || !s.IsActive() {
		return sessionRepo.ErrSessionNotFound
	}
	f.confirmed[id] = referenceCode
	return nil
}

type fakeBookingClient struct {
	requests []*bookingservice.CreateBookingRequest
	err      error
}

func (f *fakeBookingClient) CreateBooking(ctx context.Context, req *bookingservice.CreateBookingRequest) (*bookingservice.CreateBookingResponse, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return &bookingservice.CreateBookingResponse{ID: 42, ReferenceCode: "BK-2026-000042"}, nil
}

// completeSession собирает сессию с полностью заполненной формой:
// стандартная уборка, 2 комнаты, 1 санузел, одно временное окно,
// сохраненный адрес, привязка к пользователю
func completeSession(userID int64) *domain.WizardSession {
	form := domain.NewBookingFormState()
	form.ServiceType = "STANDARD_CLEANING"
	form.NumRooms = 2
	form.NumBathrooms = 1
	form.AreaSqm = "60"
	form.TimeSlots = []domain.TimeSlot{
		{
			Date:      time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC),
			StartTime: "10:00",
			EndTime:   "13:00",
		},
	}
	form.SetSavedAddress("addr-7", "city-bucharest", "area-s1")

	return &domain.WizardSession{
		ID:          "sess-1",
		UserID:      ptr.Ptr(userID),
		CurrentStep: domain.StepSummary,
		Status:      domain.SessionActive,
		Form:        form,
	}
}

func newTestUseCase(repo *fakeSessionRepo, booking *fakeBookingClient) *UseCase {
	return NewUseCase(repo, booking, passthroughTxManager{}, noopLogger{})
}

func TestExecute_SubmitsCompleteForm(t *testing.T) {
	repo := newFakeSessionRepo(completeSession(101))
	booking := &fakeBookingClient{}
	uc := newTestUseCase(repo, booking)

	resp, err := uc.Execute(context.Background(), &Request{SessionID: "sess-1", UserID: 101})

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.BookingID)
	assert.Equal(t, "BK-2026-000042", resp.ReferenceCode)
	assert.Equal(t, domain.SessionConfirmed, resp.Session.Status)
	require.NotNil(t, resp.Session.ReferenceCode)
	assert.Equal(t, "BK-2026-000042", *resp.Session.ReferenceCode)
	assert.Equal(t, "BK-2026-000042", repo.confirmed["sess-1"])

	// Заявка уходит со ссылкой на сохраненный адрес, без inline-адреса
	require.Len(t, booking.requests, 1)
	req := booking.requests[0]
	assert.Equal(t, int64(101), req.UserID)
	assert.Equal(t, "STANDARD_CLEANING", req.ServiceType)
	assert.Equal(t, 2, req.NumRooms)
	assert.Equal(t, 1, req.NumBathrooms)
	assert.Equal(t, 60.0, req.AreaSqm)
	require.Len(t, req.TimeSlots, 1)
	assert.Equal(t, "2026-09-10", req.TimeSlots[0].Date)
	assert.Equal(t, "10:00", req.TimeSlots[0].StartTime)
	require.NotNil(t, req.AddressID)
	assert.Equal(t, "addr-7", *req.AddressID)
	assert.Nil(t, req.Address)
	assert.Nil(t, req.PreferredCleanerID)
	assert.Nil(t, req.SuggestedStartTime)
}

func TestExecute_FreeformAddressGoesInline(t *testing.T) {
	s := completeSession(101)
	s.Form.SetFreeformAddress(domain.FreeformAddress{
		StreetAddress: "Strada Aviatorilor 10",
		City:          "București",
		County:        "București",
		Apartment:     "12",
	}, "city-bucharest", "area-s1")
	repo := newFakeSessionRepo(s)
	booking := &fakeBookingClient{}
	uc := newTestUseCase(repo, booking)

	_, err := uc.Execute(context.Background(), &Request{SessionID: "sess-1", UserID: 101})

	require.NoError(t, err)
	req := booking.requests[0]
	assert.Nil(t, req.AddressID)
	require.NotNil(t, req.Address)
	assert.Equal(t, "Strada Aviatorilor 10", req.Address.StreetAddress)
	assert.Equal(t, "12", req.Address.Apartment)
}

func TestExecute_PreferredCleanerForwarded(t *testing.T) {
	s := completeSession(101)
	s.Form.SelectCleaner("cleaner-9", "11:00")
	repo := newFakeSessionRepo(s)
	booking := &fakeBookingClient{}
	uc := newTestUseCase(repo, booking)

	_, err := uc.Execute(context.Background(), &Request{SessionID: "sess-1", UserID: 101})

	require.NoError(t, err)
	req := booking.requests[0]
	require.NotNil(t, req.PreferredCleanerID)
	assert.Equal(t, "cleaner-9", *req.PreferredCleanerID)
	require.NotNil(t, req.SuggestedStartTime)
	assert.Equal(t, "11:00", *req.SuggestedStartTime)
}

func TestExecute_RejectsAnonymous(t *testing.T) {
	repo := newFakeSessionRepo(completeSession(101))
	booking := &fakeBookingClient{}
	uc := newTestUseCase(repo, booking)

	_, err := uc.Execute(context.Background(), &Request{SessionID: "sess-1", UserID: 0})

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, booking.requests)
}

func TestExecute_RejectsForeignUser(t *testing.T) {
	repo := newFakeSessionRepo(completeSession(101))
	booking := &fakeBookingClient{}
	uc := newTestUseCase(repo, booking)

	_, err := uc.Execute(context.Background(), &Request{SessionID: "sess-1", UserID: 202})

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, booking.requests)
}

func TestExecute_RejectsIncompleteForm(t *testing.T) {
	s := completeSession(101)
	s.Form.TimeSlots = nil
	repo := newFakeSessionRepo(s)
	booking := &fakeBookingClient{}
	uc := newTestUseCase(repo, booking)

	_, err := uc.Execute(context.Background(), &Request{SessionID: "sess-1", UserID: 101})

	assert.ErrorIs(t, err, ErrFormIncomplete)
	assert.Empty(t, booking.requests)
}

func TestExecute_RejectsDoubleSubmit(t *testing.T) {
	s := completeSession(101)
	s.Status = domain.SessionConfirmed
	repo := newFakeSessionRepo(s)
	booking := &fakeBookingClient{}
	uc := newTestUseCase(repo, booking)

	_, err := uc.Execute(context.Background(), &Request{SessionID: "sess-1", UserID: 101})

	assert.ErrorIs(t, err, ErrAlreadySubmitted)
	assert.Empty(t, booking.requests)
}

func TestExecute_BookingRejectedKeepsSessionActive(t *testing.T) {
	s := completeSession(101)
	repo := newFakeSessionRepo(s)
	booking := &fakeBookingClient{err: bookingservice.ErrRejected}
	uc := newTestUseCase(repo, booking)

	_, err := uc.Execute(context.Background(), &Request{SessionID: "sess-1", UserID: 101})

	assert.ErrorIs(t, err, ErrBookingRejected)

	// Сессия осталась активной, введенные данные не потеряны
	assert.Equal(t, domain.SessionActive, s.Status)
	assert.Empty(t, repo.confirmed)
	assert.Equal(t, "STANDARD_CLEANING", s.Form.ServiceType)
}

func TestExecute_SessionNotFound(t *testing.T) {
	repo := newFakeSessionRepo()
	uc := newTestUseCase(repo, &fakeBookingClient{})

	_, err := uc.Execute(context.Background(), &Request{SessionID: "missing", UserID: 101})

	assert.ErrorIs(t, err, ErrSessionNotFound)
}
