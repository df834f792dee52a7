package estimator

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/m04kA/SMC-WizardService/internal/domain"
	"github.com/m04kA/SMC-WizardService/internal/infra/storage/session"
	"github.com/m04kA/SMC-WizardService/internal/integrations/pricingservice"
	"github.com/m04kA/SMC-WizardService/pkg/ptr"
)

// requestTimeout максимальное время ожидания ответа PricingService
// после срабатывания таймера
const requestTimeout = 10 * time.Second

// Service координатор пересчета стоимости
//
// Каждое изменение ценообразующих полей отменяет предыдущий отложенный запрос
// и ставит новый через debounce-паузу (побеждает последнее изменение).
// Каждому запланированному запросу присваивается монотонный номер на сессию:
// хранилище отклоняет запись расчета с номером меньше сохраненного, поэтому
// ответ, опоздавший из-за переупорядочивания в сети, не может затереть более
// новый. Close останавливает все таймеры - после остановки записей не будет
type Service struct {
	pricing  PricingClient
	store    SessionStore
	debounce time.Duration
	logger   Logger

	mu      sync.Mutex
	pending map[string]*time.Timer
	seqs    map[string]uint64
	closed  bool
}

// NewService создает координатор пересчета стоимости
func NewService(pricing PricingClient, store SessionStore, debounce time.Duration, logger Logger) *Service {
	return &Service{
		pricing:  pricing,
		store:    store,
		debounce: debounce,
		logger:   logger,
		pending:  make(map[string]*time.Timer),
		seqs:     make(map[string]uint64),
	}
}

// Trigger планирует пересчет стоимости по снимку ценообразующих полей
// Предыдущий отложенный запрос сессии отменяется; при пустом serviceType
// новый запрос не планируется
func (s *Service) Trigger(sessionID string, snap domain.PricingSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	if timer, ok := s.pending[sessionID]; ok {
		timer.Stop()
		delete(s.pending, sessionID)
	}

	if snap.ServiceType == "" {
		return
	}

	s.seqs[sessionID]++
	seq := s.seqs[sessionID]

	s.pending[sessionID] = time.AfterFunc(s.debounce, func() {
		s.fire(sessionID, snap, seq)
	})
}

// Close останавливает все отложенные таймеры
// Новые Trigger после закрытия игнорируются
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	for id, timer := range s.pending {
		timer.Stop()
		delete(s.pending, id)
	}
}

func (s *Service) fire(sessionID string, snap domain.PricingSnapshot, seq uint64) {
	s.mu.Lock()
	delete(s.pending, sessionID)
	closed := s.closed
	s.mu.Unlock()

	if closed {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	estimate, err := s.pricing.Estimate(ctx, buildRequest(snap))
	if err != nil {
		// Ошибка расчета не блокирует мастер: клиент показывает заглушку
		// "цена будет рассчитана автоматически"
		s.logger.Warn("Estimator: estimate request failed for session=%s: %v", sessionID, err)
		return
	}

	if err := s.store.UpdateEstimate(ctx, sessionID, estimate.ToDomain(), seq); err != nil {
		if errors.Is(err, session.ErrStaleEstimate) {
			s.logger.Info("Estimator: discarded stale estimate seq=%d for session=%s", seq, sessionID)
			return
		}
		s.logger.Error("Estimator: failed to store estimate for session=%s: %v", sessionID, err)
		return
	}

	s.logger.Info("Estimator: stored estimate seq=%d for session=%s, total=%.2f",
		seq, sessionID, estimate.Total)
}

// buildRequest собирает запрос расчета из снимка полей формы
func buildRequest(snap domain.PricingSnapshot) *pricingservice.EstimateRequest {
	req := &pricingservice.EstimateRequest{
		ServiceType:  snap.ServiceType,
		NumRooms:     snap.NumRooms,
		NumBathrooms: snap.NumBathrooms,
		HasPets:      snap.HasPets,
		Extras:       make([]pricingservice.ExtraRequest, 0, len(snap.Extras)),
	}

	if area, err := strconv.ParseFloat(strings.TrimSpace(snap.AreaSqm), 64); err == nil && area > 0 {
		req.AreaSqm = ptr.Ptr(area)
	}
	if snap.PropertyType != "" {
		req.PropertyType = ptr.Ptr(snap.PropertyType)
	}
	for _, e := range snap.Extras {
		req.Extras = append(req.Extras, pricingservice.ExtraRequest{
			ExtraID:  e.ExtraID,
			Quantity: e.Quantity,
		})
	}

	return req
}
