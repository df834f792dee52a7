package estimator

import (
	"context"

	"github.com/m04kA/SMC-WizardService/internal/domain"
	"github.com/m04kA/SMC-WizardService/internal/integrations/pricingservice"
)

// PricingClient интерфейс клиента PricingService
type PricingClient interface {
	Estimate(ctx context.Context, req *pricingservice.EstimateRequest) (*pricingservice.Estimate, error)
}

// SessionStore интерфейс хранилища для записи принятого расчета
// Запись с номером seq меньше сохраненного должна отклоняться
type SessionStore interface {
	UpdateEstimate(ctx context.Context, sessionID string, estimate *domain.PriceEstimate, seq uint64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
