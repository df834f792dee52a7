package resolve_address

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WizardService/internal/domain"
	sessionRepo "github.com/m04kA/SMC-WizardService/internal/infra/storage/session"
	"github.com/m04kA/SMC-WizardService/internal/integrations/geoservice"
	"github.com/m04kA/SMC-WizardService/internal/integrations/userservice"
	"github.com/m04kA/SMC-WizardService/pkg/ptr"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeSessionRepo struct {
	sessions map[string]*domain.WizardSession
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
	return nil
}

type fakeGeoClient struct{}

func (fakeGeoClient) SuggestAddresses(ctx context.Context, query string) ([]geoservice.ParsedAddress, error) {
	return nil, nil
}

type fakeUserClient struct {
	address *userservice.SavedAddress
}

func (f *fakeUserClient) GetSavedAddress(ctx context.Context, userID int64, addressID string) (*userservice.SavedAddress, error) {
	if f.address == nil {
		return nil, userservice.ErrAddressNotFound
	}
	return f.address, nil
}

func activeSession(id string) *domain.WizardSession {
	return &domain.WizardSession{
		ID:      id,
		Status:  domain.SessionActive,
		Form:    domain.NewBookingFormState(),
		Catalog: testCatalog(),
	}
}

func newTestUseCase(repo *fakeSessionRepo, user *fakeUserClient) *UseCase {
	return NewUseCase(repo, fakeGeoClient{}, user, noopLogger{})
}

func TestResolve(t *testing.T) {
	t.Run("known neighborhood resolves city and area", func(t *testing.T) {
		repo := newFakeSessionRepo(activeSession("sess-1"))
		uc := newTestUseCase(repo, &fakeUserClient{})

		resp, err := uc.Resolve(context.Background(), &ResolveRequest{
			SessionID: "sess-1",
			Address: domain.FreeformAddress{
				StreetAddress: "Strada Aviatorilor 10",
				City:          "bucuresti",
			},
			Neighborhood: "Sector 2",
		})

		require.NoError(t, err)
		require.NotNil(t, resp.Area)
		assert.Equal(t, "area-s2", resp.Area.ID)
		assert.Equal(t, "city-bucharest", resp.Session.Form.SelectedCityID)
		assert.Equal(t, "area-s2", resp.Session.Form.SelectedAreaID)
	})

	t.Run("unknown neighborhood leaves area unresolved", func(t *testing.T) {
		repo := newFakeSessionRepo(activeSession("sess-1"))
		uc := newTestUseCase(repo, &fakeUserClient{})

		resp, err := uc.Resolve(context.Background(), &ResolveRequest{
			SessionID: "sess-1",
			Address: domain.FreeformAddress{
				StreetAddress: "Strada Pipera 5",
				City:          "București",
			},
			Neighborhood: "Pipera",
		})

		// Город привязан, район остается пустым до ручного выбора
		require.NoError(t, err)
		assert.Nil(t, resp.Area)
		form := resp.Session.Form
		assert.Equal(t, "city-bucharest", form.SelectedCityID)
		assert.Empty(t, form.SelectedAreaID)
		assert.Equal(t, domain.AddressKindFreeform, form.Address.Kind)
	})

	t.Run("unsupported city", func(t *testing.T) {
		repo := newFakeSessionRepo(activeSession("sess-1"))
		uc := newTestUseCase(repo, &fakeUserClient{})

		_, err := uc.Resolve(context.Background(), &ResolveRequest{
			SessionID: "sess-1",
			Address: domain.FreeformAddress{
				StreetAddress: "Bulevardul Mamaia 1",
				City:          "Constanța",
			},
		})

		assert.ErrorIs(t, err, ErrCityNotSupported)
	})
}

func TestSelectSaved_DefaultsToFirstArea(t *testing.T) {
	s := activeSession("sess-1")
	s.UserID = ptr.Ptr(int64(101))
	repo := newFakeSessionRepo(s)
	user := &fakeUserClient{address: &userservice.SavedAddress{
		ID:   "addr-7",
		City: "București",
	}}
	uc := newTestUseCase(repo, user)

	resp, err := uc.SelectSaved(context.Background(), &SelectSavedRequest{
		SessionID: "sess-1",
		UserID:    101,
		AddressID: "addr-7",
	})

	require.NoError(t, err)
	require.NotNil(t, resp.Area)
	assert.Equal(t, "area-s1", resp.Area.ID)
	assert.Equal(t, "addr-7", resp.Session.Form.Address.SavedAddressID)
}
