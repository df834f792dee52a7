package pricingservice

import "github.com/m04kA/SMC-WizardService/internal/domain"

// EstimateRequest запрос расчета стоимости
type EstimateRequest struct {
	ServiceType  string         `json:"service_type"`
	NumRooms     int            `json:"num_rooms"`
	NumBathrooms int            `json:"num_bathrooms"`
	AreaSqm      *float64       `json:"area_sqm,omitempty"`
	PropertyType *string        `json:"property_type,omitempty"`
	HasPets      bool           `json:"has_pets"`
	Extras       []ExtraRequest `json:"extras"`
}

// ExtraRequest позиция дополнительной услуги в запросе расчета
type ExtraRequest struct {
	ExtraID  string `json:"extra_id"`
	Quantity int    `json:"quantity"`
}

// Estimate расчет стоимости от PricingService
type Estimate struct {
	HourlyRate         float64     `json:"hourly_rate"`
	EstimatedHours     float64     `json:"estimated_hours"`
	PropertyMultiplier float64     `json:"property_multiplier"`
	PetsSurcharge      float64     `json:"pets_surcharge"`
	Subtotal           float64     `json:"subtotal"`
	Extras             []ExtraLine `json:"extras"`
	Total              float64     `json:"total"`
}

// ExtraLine строка расчета по дополнительной услуге
type ExtraLine struct {
	ExtraID   string  `json:"extra_id"`
	ExtraName string  `json:"extra_name"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

// ErrorResponse модель ошибки от PricingService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ToDomain конвертирует расчет в доменную модель
func (e *Estimate) ToDomain() *domain.PriceEstimate {
	lines := make([]domain.EstimateLine, 0, len(e.Extras))
	for _, l := range e.Extras {
		lines = append(lines, domain.EstimateLine{
			ExtraID:   l.ExtraID,
			ExtraName: l.ExtraName,
			Quantity:  l.Quantity,
			LineTotal: l.LineTotal,
		})
	}
	return &domain.PriceEstimate{
		HourlyRate:         e.HourlyRate,
		EstimatedHours:     e.EstimatedHours,
		PropertyMultiplier: e.PropertyMultiplier,
		PetsSurcharge:      e.PetsSurcharge,
		Subtotal:           e.Subtotal,
		Extras:             lines,
		Total:              e.Total,
	}
}
