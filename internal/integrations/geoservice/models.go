package geoservice

// SuggestResponse ответ автодополнения адресов
type SuggestResponse struct {
	Candidates []ParsedAddress `json:"candidates"`
}

// ParsedAddress разобранный кандидат адреса
type ParsedAddress struct {
	StreetAddress string   `json:"street_address"`
	City          string   `json:"city"`
	County        string   `json:"county"`
	Neighborhood  string   `json:"neighborhood"`
	Floor         string   `json:"floor"`
	Apartment     string   `json:"apartment"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
}

// ErrorResponse модель ошибки от GeoService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
