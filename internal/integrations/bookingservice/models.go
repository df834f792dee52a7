package bookingservice

// CreateBookingRequest заявка на создание бронирования
// Адрес передается ссылкой на сохраненный (AddressID) ИЛИ inline-объектом
type CreateBookingRequest struct {
	UserID       int64   `json:"user_id"`
	ServiceType  string  `json:"service_type"`
	PropertyType string  `json:"property_type"`
	NumRooms     int     `json:"num_rooms"`
	NumBathrooms int     `json:"num_bathrooms"`
	AreaSqm      float64 `json:"area_sqm"`
	HasPets      bool    `json:"has_pets"`

	Extras    []BookingExtra `json:"extras"`
	TimeSlots []BookingSlot  `json:"time_slots"`

	AddressID *string         `json:"address_id,omitempty"`
	Address   *BookingAddress `json:"address,omitempty"`
	CityID    string          `json:"city_id,omitempty"`
	AreaID    string          `json:"area_id,omitempty"`

	PreferredCleanerID *string `json:"preferred_cleaner_id,omitempty"`
	SuggestedStartTime *string `json:"suggested_start_time,omitempty"`

	SpecialInstructions string `json:"special_instructions,omitempty"`
}

// BookingExtra позиция дополнительной услуги в заявке
type BookingExtra struct {
	ExtraID  string `json:"extra_id"`
	Quantity int    `json:"quantity"`
}

// BookingSlot временное окно в заявке
type BookingSlot struct {
	Date      string `json:"date"` // YYYY-MM-DD
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// BookingAddress inline-адрес в заявке (когда выбран ручной ввод)
type BookingAddress struct {
	StreetAddress string   `json:"street_address"`
	City          string   `json:"city"`
	County        string   `json:"county"`
	Floor         string   `json:"floor,omitempty"`
	Apartment     string   `json:"apartment,omitempty"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
}

// CreateBookingResponse результат создания бронирования
type CreateBookingResponse struct {
	ID            int64  `json:"id"`
	ReferenceCode string `json:"reference_code"`
}

// ErrorResponse модель ошибки от BookingService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
