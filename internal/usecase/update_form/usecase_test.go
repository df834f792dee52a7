package update_form

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WizardService/internal/domain"
	sessionRepo "github.com/m04kA/SMC-WizardService/internal/infra/storage/session"
	"github.com/m04kA/SMC-WizardService/pkg/ptr"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeSessionRepo struct {
	sessions map[string]*domain.WizardSession
	saved    int
}

func newFakeSessionRepo(sessions ...*domain.WizardSession) *fakeSessionRepo {
	repo := &fakeSessionRepo{sessions: make(map[string]*domain.WizardSession)}
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

func (f *fakeSessionRepo) UpdateForm(ctx context.Context, id string, form *domain.BookingFormState) error {
	f.sessions[id].Form = form
	f.saved++
	return nil
}

type fakeEstimator struct {
	triggers []domain.PricingSnapshot
}

func (f *fakeEstimator) Trigger(sessionID string, snap domain.PricingSnapshot) {
	f.triggers = append(f.triggers, snap)
}

func activeSession(id string) *domain.WizardSession {
	return &domain.WizardSession{
		ID:     id,
		Status: domain.SessionActive,
		Form:   domain.NewBookingFormState(),
		Catalog: &domain.CatalogSnapshot{
			Cities: []domain.ActiveCity{
				{
					ID:   "city-bucharest",
					Name: "București",
					Areas: []domain.CityArea{
						{ID: "area-s1", Name: "Sectorul 1"},
						{ID: "area-s2", Name: "Sectorul 2"},
					},
				},
				{
					ID:    "city-cluj",
					Name:  "Cluj-Napoca",
					Areas: []domain.CityArea{{ID: "area-centru", Name: "Centru"}},
				},
			},
		},
	}
}

func TestExecute_SchedulesEstimateOnPricingChange(t *testing.T) {
	repo := newFakeSessionRepo(activeSession("sess-1"))
	repo.sessions["sess-1"].Form.ServiceType = "STANDARD_CLEANING"
	estimator := &fakeEstimator{}
	uc := NewUseCase(repo, estimator, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		SessionID: "sess-1",
		Update:    domain.FormUpdate{NumRooms: ptr.Ptr(3)},
	})

	require.NoError(t, err)
	assert.True(t, resp.EstimateScheduled)
	require.Len(t, estimator.triggers, 1)
	assert.Equal(t, 3, estimator.triggers[0].NumRooms)
	assert.Equal(t, 1, repo.saved)
}

func TestExecute_NoEstimateWithoutServiceType(t *testing.T) {
	repo := newFakeSessionRepo(activeSession("sess-1"))
	estimator := &fakeEstimator{}
	uc := NewUseCase(repo, estimator, noopLogger{})

	// Услуга еще не выбрана: форма сохраняется, но пересчет не планируется
	resp, err := uc.Execute(context.Background(), &Request{
		SessionID: "sess-1",
		Update:    domain.FormUpdate{NumRooms: ptr.Ptr(3)},
	})

	require.NoError(t, err)
	assert.False(t, resp.EstimateScheduled)
	assert.Empty(t, estimator.triggers)
	assert.Equal(t, 1, repo.saved)
}

func TestExecute_NoEstimateOnNonPricingChange(t *testing.T) {
	repo := newFakeSessionRepo(activeSession("sess-1"))
	repo.sessions["sess-1"].Form.ServiceType = "STANDARD_CLEANING"
	estimator := &fakeEstimator{}
	uc := NewUseCase(repo, estimator, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		SessionID: "sess-1",
		Update:    domain.FormUpdate{SpecialInstructions: ptr.Ptr("позвоните за час")},
	})

	require.NoError(t, err)
	assert.False(t, resp.EstimateScheduled)
	assert.Empty(t, estimator.triggers)
}

func TestExecute_ValidationErrors(t *testing.T) {
	repo := newFakeSessionRepo(activeSession("sess-1"))
	uc := NewUseCase(repo, &fakeEstimator{}, noopLogger{})

	tests := []struct {
		name string
		req  *Request
	}{
		{"empty session id", &Request{SessionID: ""}},
		{"rooms below minimum", &Request{SessionID: "sess-1", Update: domain.FormUpdate{NumRooms: ptr.Ptr(0)}}},
		{"bathrooms below minimum", &Request{SessionID: "sess-1", Update: domain.FormUpdate{NumBathrooms: ptr.Ptr(0)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_ManualAreaSelection(t *testing.T) {
	t.Run("applies city and area from catalog", func(t *testing.T) {
		repo := newFakeSessionRepo(activeSession("sess-1"))
		uc := NewUseCase(repo, &fakeEstimator{}, noopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{
			SessionID: "sess-1",
			Update: domain.FormUpdate{
				SelectedCityID: ptr.Ptr("city-bucharest"),
				SelectedAreaID: ptr.Ptr("area-s2"),
			},
		})

		require.NoError(t, err)
		assert.Equal(t, "city-bucharest", resp.Session.Form.SelectedCityID)
		assert.Equal(t, "area-s2", resp.Session.Form.SelectedAreaID)
		assert.False(t, resp.EstimateScheduled)
	})

	t.Run("applies area for already selected city", func(t *testing.T) {
		s := activeSession("sess-1")
		s.Form.SelectedCityID = "city-bucharest"
		repo := newFakeSessionRepo(s)
		uc := NewUseCase(repo, &fakeEstimator{}, noopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{
			SessionID: "sess-1",
			Update:    domain.FormUpdate{SelectedAreaID: ptr.Ptr("area-s1")},
		})

		require.NoError(t, err)
		assert.Equal(t, "area-s1", resp.Session.Form.SelectedAreaID)
	})

	t.Run("rejects unknown city", func(t *testing.T) {
		repo := newFakeSessionRepo(activeSession("sess-1"))
		uc := NewUseCase(repo, &fakeEstimator{}, noopLogger{})

		_, err := uc.Execute(context.Background(), &Request{
			SessionID: "sess-1",
			Update:    domain.FormUpdate{SelectedCityID: ptr.Ptr("city-constanta")},
		})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects area from another city", func(t *testing.T) {
		repo := newFakeSessionRepo(activeSession("sess-1"))
		uc := NewUseCase(repo, &fakeEstimator{}, noopLogger{})

		_, err := uc.Execute(context.Background(), &Request{
			SessionID: "sess-1",
			Update: domain.FormUpdate{
				SelectedCityID: ptr.Ptr("city-cluj"),
				SelectedAreaID: ptr.Ptr("area-s1"),
			},
		})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects area without selected city", func(t *testing.T) {
		repo := newFakeSessionRepo(activeSession("sess-1"))
		uc := NewUseCase(repo, &fakeEstimator{}, noopLogger{})

		_, err := uc.Execute(context.Background(), &Request{
			SessionID: "sess-1",
			Update:    domain.FormUpdate{SelectedAreaID: ptr.Ptr("area-s1")},
		})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestExecute_CompletedSession(t *testing.T) {
	s := activeSession("sess-1")
	s.Status = domain.SessionConfirmed
	repo := newFakeSessionRepo(s)
	uc := NewUseCase(repo, &fakeEstimator{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		SessionID: "sess-1",
		Update:    domain.FormUpdate{NumRooms: ptr.Ptr(3)},
	})

	assert.ErrorIs(t, err, ErrSessionCompleted)
}

func TestExecute_SessionNotFound(t *testing.T) {
	repo := newFakeSessionRepo()
	uc := NewUseCase(repo, &fakeEstimator{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		SessionID: "missing",
		Update:    domain.FormUpdate{NumRooms: ptr.Ptr(3)},
	})

	assert.ErrorIs(t, err, ErrSessionNotFound)
}
