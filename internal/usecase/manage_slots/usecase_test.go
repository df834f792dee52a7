package manage_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WizardService/internal/domain"
	sessionRepo "github.com/m04kA/SMC-WizardService/internal/infra/storage/session"
	"github.com/m04kA/SMC-WizardService/pkg/types"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

// passthroughTxManager выполняет функцию без транзакции
type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

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

func activeSession(id string, slots ...domain.TimeSlot) *domain.WizardSession {
	form := domain.NewBookingFormState()
	form.TimeSlots = slots
	return &domain.WizardSession{
		ID:     id,
		Status: domain.SessionActive,
		Form:   form,
	}
}

func newTestUseCase(repo *fakeSessionRepo, now time.Time) *UseCase {
	return NewUseCase(repo, passthroughTxManager{}, fixedClock{now: now}, noopLogger{})
}

func TestAdd(t *testing.T) {
	now := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)

	t.Run("adds slot to empty list", func(t *testing.T) {
		repo := newFakeSessionRepo(activeSession("sess-1"))
		uc := newTestUseCase(repo, now)

		resp, err := uc.Add(context.Background(), &AddRequest{
			SessionID: "sess-1",
			Date:      "2026-09-10",
			StartTime: "10:00",
			EndTime:   "13:00",
		})

		require.NoError(t, err)
		require.Len(t, resp.Slots, 1)
		assert.Equal(t, "10:00", resp.Slots[0].StartTime.String())
		assert.Equal(t, "13:00", resp.Slots[0].EndTime.String())
	})

	t.Run("rejects sixth slot", func(t *testing.T) {
		slots := make([]domain.TimeSlot, 0, domain.MaxTimeSlots)
		for day := 7; day < 7+domain.MaxTimeSlots; day++ {
			slots = append(slots, domain.TimeSlot{
				Date:      time.Date(2026, time.September, day, 0, 0, 0, 0, time.UTC),
				StartTime: "10:00",
				EndTime:   "13:00",
			})
		}
		repo := newFakeSessionRepo(activeSession("sess-1", slots...))
		uc := newTestUseCase(repo, now)

		_, err := uc.Add(context.Background(), &AddRequest{
			SessionID: "sess-1",
			Date:      "2026-09-20",
			StartTime: "10:00",
			EndTime:   "13:00",
		})

		assert.ErrorIs(t, err, ErrSlotLimitReached)
		assert.Len(t, repo.sessions["sess-1"].Form.TimeSlots, domain.MaxTimeSlots)
	})

	t.Run("rejects duplicate window", func(t *testing.T) {
		repo := newFakeSessionRepo(activeSession("sess-1", domain.TimeSlot{
			Date:      time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC),
			StartTime: "10:00",
			EndTime:   "13:00",
		}))
		uc := newTestUseCase(repo, now)

		_, err := uc.Add(context.Background(), &AddRequest{
			SessionID: "sess-1",
			Date:      "2026-09-10",
			StartTime: "10:00",
			EndTime:   "13:00",
		})

		assert.ErrorIs(t, err, ErrDuplicateSlot)
	})

	t.Run("allows same window on another day", func(t *testing.T) {
		repo := newFakeSessionRepo(activeSession("sess-1", domain.TimeSlot{
			Date:      time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC),
			StartTime: "10:00",
			EndTime:   "13:00",
		}))
		uc := newTestUseCase(repo, now)

		resp, err := uc.Add(context.Background(), &AddRequest{
			SessionID: "sess-1",
			Date:      "2026-09-11",
			StartTime: "10:00",
			EndTime:   "13:00",
		})

		require.NoError(t, err)
		assert.Len(t, resp.Slots, 2)
	})

	t.Run("rejects past date", func(t *testing.T) {
		repo := newFakeSessionRepo(activeSession("sess-1"))
		uc := newTestUseCase(repo, now)

		_, err := uc.Add(context.Background(), &AddRequest{
			SessionID: "sess-1",
			Date:      "2026-08-31",
			StartTime: "10:00",
			EndTime:   "13:00",
		})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("accepts today", func(t *testing.T) {
		repo := newFakeSessionRepo(activeSession("sess-1"))
		uc := newTestUseCase(repo, now)

		_, err := uc.Add(context.Background(), &AddRequest{
			SessionID: "sess-1",
			Date:      "2026-09-01",
			StartTime: "14:00",
			EndTime:   "17:00",
		})

		assert.NoError(t, err)
	})

	t.Run("rejects window outside working hours", func(t *testing.T) {
		repo := newFakeSessionRepo(activeSession("sess-1"))
		uc := newTestUseCase(repo, now)

		tests := []struct {
			name  string
			start string
			end   string
		}{
			{"start before opening", "07:00", "10:00"},
			{"start after last start", "18:30", "20:00"},
			{"end after closing", "17:00", "20:30"},
			{"end before start", "12:00", "10:00"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := uc.Add(context.Background(), &AddRequest{
					SessionID: "sess-1",
					Date:      "2026-09-10",
					StartTime: types.TimeString(tt.start),
					EndTime:   types.TimeString(tt.end),
				})
				assert.ErrorIs(t, err, ErrInvalidInput)
			})
		}
	})

	t.Run("rejects window shorter than estimated duration", func(t *testing.T) {
		s := activeSession("sess-1")
		s.LatestEstimate = &domain.PriceEstimate{EstimatedHours: 3}
		repo := newFakeSessionRepo(s)
		uc := newTestUseCase(repo, now)

		_, err := uc.Add(context.Background(), &AddRequest{
			SessionID: "sess-1",
			Date:      "2026-09-10",
			StartTime: "10:00",
			EndTime:   "10:30",
		})

		assert.ErrorIs(t, err, ErrSlotTooShort)
		assert.Empty(t, repo.sessions["sess-1"].Form.TimeSlots)

		// Окно, вмещающее оценку целиком, проходит
		resp, err := uc.Add(context.Background(), &AddRequest{
			SessionID: "sess-1",
			Date:      "2026-09-10",
			StartTime: "10:00",
			EndTime:   "13:00",
		})
		require.NoError(t, err)
		assert.Len(t, resp.Slots, 1)
	})

	t.Run("rejects window shorter than dropped estimate ceiling", func(t *testing.T) {
		s := activeSession("sess-1")
		s.LatestEstimate = &domain.PriceEstimate{EstimatedHours: 2.5}
		repo := newFakeSessionRepo(s)
		uc := newTestUseCase(repo, now)

		// Дробная оценка округляется вверх: 2.5 часа требуют трехчасового окна
		_, err := uc.Add(context.Background(), &AddRequest{
			SessionID: "sess-1",
			Date:      "2026-09-10",
			StartTime: "10:00",
			EndTime:   "12:30",
		})

		assert.ErrorIs(t, err, ErrSlotTooShort)
	})

	t.Run("rejects completed session", func(t *testing.T) {
		s := activeSession("sess-1")
		s.Status = domain.SessionConfirmed
		repo := newFakeSessionRepo(s)
		uc := newTestUseCase(repo, now)

		_, err := uc.Add(context.Background(), &AddRequest{
			SessionID: "sess-1",
			Date:      "2026-09-10",
			StartTime: "10:00",
			EndTime:   "13:00",
		})

		assert.ErrorIs(t, err, ErrSessionCompleted)
	})

	t.Run("unknown session", func(t *testing.T) {
		repo := newFakeSessionRepo()
		uc := newTestUseCase(repo, now)

		_, err := uc.Add(context.Background(), &AddRequest{
			SessionID: "missing",
			Date:      "2026-09-10",
			StartTime: "10:00",
			EndTime:   "13:00",
		})

		assert.ErrorIs(t, err, ErrSessionNotFound)
	})
}

func TestRemove(t *testing.T) {
	now := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)

	makeSlots := func() []domain.TimeSlot {
		return []domain.TimeSlot{
			{Date: time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC), StartTime: "09:00", EndTime: "12:00"},
			{Date: time.Date(2026, time.September, 11, 0, 0, 0, 0, time.UTC), StartTime: "10:00", EndTime: "13:00"},
			{Date: time.Date(2026, time.September, 12, 0, 0, 0, 0, time.UTC), StartTime: "11:00", EndTime: "14:00"},
		}
	}

	t.Run("removes middle slot preserving order", func(t *testing.T) {
		repo := newFakeSessionRepo(activeSession("sess-1", makeSlots()...))
		uc := newTestUseCase(repo, now)

		resp, err := uc.Remove(context.Background(), &RemoveRequest{SessionID: "sess-1", Index: 1})

		require.NoError(t, err)
		require.Len(t, resp.Slots, 2)
		assert.Equal(t, "09:00", resp.Slots[0].StartTime.String())
		assert.Equal(t, "11:00", resp.Slots[1].StartTime.String())
	})

	t.Run("index out of range", func(t *testing.T) {
		repo := newFakeSessionRepo(activeSession("sess-1", makeSlots()...))
		uc := newTestUseCase(repo, now)

		_, err := uc.Remove(context.Background(), &RemoveRequest{SessionID: "sess-1", Index: 3})

		assert.ErrorIs(t, err, ErrSlotNotFound)
	})

	t.Run("negative index", func(t *testing.T) {
		repo := newFakeSessionRepo(activeSession("sess-1", makeSlots()...))
		uc := newTestUseCase(repo, now)

		_, err := uc.Remove(context.Background(), &RemoveRequest{SessionID: "sess-1", Index: -1})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
