package userservice

// SavedAddress сохраненный адрес пользователя из UserService
type SavedAddress struct {
	ID            string   `json:"id"`
	UserID        int64    `json:"user_id"`
	Label         string   `json:"label"`
	StreetAddress string   `json:"street_address"`
	City          string   `json:"city"`
	County        string   `json:"county"`
	Floor         string   `json:"floor"`
	Apartment     string   `json:"apartment"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	IsDefault     bool     `json:"is_default"`
}

// ErrorResponse модель ошибки от UserService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
