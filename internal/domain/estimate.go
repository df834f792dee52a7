package domain

// EstimateLine позиция дополнительной услуги в расчете стоимости
type EstimateLine struct {
	ExtraID   string  `json:"extraId"`
	ExtraName string  `json:"extraName"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"lineTotal"`
}

// PriceEstimate серверный расчет стоимости уборки
// Производное одноразовое значение: при каждом пересчете заменяется целиком,
// никогда не сливается с формой
type PriceEstimate struct {
	HourlyRate         float64        `json:"hourlyRate"`
	EstimatedHours     float64        `json:"estimatedHours"`
	PropertyMultiplier float64        `json:"propertyMultiplier"`
	PetsSurcharge      float64        `json:"petsSurcharge"`
	Subtotal           float64        `json:"subtotal"`
	Extras             []EstimateLine `json:"extras"`
	Total              float64        `json:"total"`
}
