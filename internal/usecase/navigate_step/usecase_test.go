package navigate_step

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WizardService/internal/domain"
	sessionRepo "github.com/m04kA/SMC-WizardService/internal/infra/storage/session"
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

func (f *fakeSessionRepo) UpdateStep(ctx context.Context, id string, step domain.Step) error {
	f.sessions[id].CurrentStep = step
	return nil
}

func sessionAtStep(step domain.Step) *domain.WizardSession {
	return &domain.WizardSession{
		ID:          "sess-1",
		CurrentStep: step,
		Status:      domain.SessionActive,
		Form:        domain.NewBookingFormState(),
	}
}

func TestExecute_NextRequiresCompleteStep(t *testing.T) {
	s := sessionAtStep(domain.StepService)
	repo := newFakeSessionRepo(s)
	uc := NewUseCase(repo, noopLogger{})

	// Услуга не выбрана: вперед нельзя
	_, err := uc.Execute(context.Background(), &Request{SessionID: "sess-1", Direction: DirectionNext})
	assert.ErrorIs(t, err, ErrStepIncomplete)
	assert.Equal(t, domain.StepService, s.CurrentStep)

	// После выбора услуги переход разрешен
	s.Form.ServiceType = "STANDARD_CLEANING"
	resp, err := uc.Execute(context.Background(), &Request{SessionID: "sess-1", Direction: DirectionNext})
	require.NoError(t, err)
	assert.Equal(t, domain.StepDetails, resp.Session.CurrentStep)
}

func TestExecute_BackAlwaysAllowed(t *testing.T) {
	// Назад можно даже с пустой формой
	s := sessionAtStep(domain.StepSchedule)
	repo := newFakeSessionRepo(s)
	uc := NewUseCase(repo, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{SessionID: "sess-1", Direction: DirectionBack})

	require.NoError(t, err)
	assert.Equal(t, domain.StepDetails, resp.Session.CurrentStep)
}

func TestExecute_BackPreservesForm(t *testing.T) {
	s := sessionAtStep(domain.StepDetails)
	s.Form.ServiceType = "DEEP_CLEANING"
	s.Form.NumRooms = 4
	repo := newFakeSessionRepo(s)
	uc := NewUseCase(repo, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{SessionID: "sess-1", Direction: DirectionBack})

	require.NoError(t, err)
	assert.Equal(t, "DEEP_CLEANING", resp.Session.Form.ServiceType)
	assert.Equal(t, 4, resp.Session.Form.NumRooms)
}

func TestExecute_BoundaryErrors(t *testing.T) {
	uc := NewUseCase(newFakeSessionRepo(), noopLogger{})

	t.Run("back from first step", func(t *testing.T) {
		repo := newFakeSessionRepo(sessionAtStep(domain.FirstStep))
		uc := NewUseCase(repo, noopLogger{})

		_, err := uc.Execute(context.Background(), &Request{SessionID: "sess-1", Direction: DirectionBack})
		assert.ErrorIs(t, err, ErrNoFurtherStep)
	})

	t.Run("next from last step", func(t *testing.T) {
		repo := newFakeSessionRepo(sessionAtStep(domain.LastStep))
		uc := NewUseCase(repo, noopLogger{})

		_, err := uc.Execute(context.Background(), &Request{SessionID: "sess-1", Direction: DirectionNext})
		assert.ErrorIs(t, err, ErrNoFurtherStep)
	})

	t.Run("unknown direction", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{SessionID: "sess-1", Direction: "sideways"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown session", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{SessionID: "missing", Direction: DirectionNext})
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})
}

func TestExecute_CompletedSession(t *testing.T) {
	s := sessionAtStep(domain.StepSummary)
	s.Status = domain.SessionConfirmed
	repo := newFakeSessionRepo(s)
	uc := NewUseCase(repo, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{SessionID: "sess-1", Direction: DirectionBack})

	assert.ErrorIs(t, err, ErrSessionCompleted)
}
