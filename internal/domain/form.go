package domain

import (
	"strconv"
	"strings"

	"github.com/m04kA/SMC-WizardService/pkg/types"
)

// AddressKind тип выбранного адреса
type AddressKind string

const (
	AddressKindNone     AddressKind = "none"
	AddressKindSaved    AddressKind = "saved"
	AddressKindFreeform AddressKind = "freeform"
)

// FreeformAddress адрес, введенный вручную (через автодополнение)
type FreeformAddress struct {
	StreetAddress string   `json:"streetAddress"`
	City          string   `json:"city"`
	County        string   `json:"county"`
	Floor         string   `json:"floor"`
	Apartment     string   `json:"apartment"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
}

// AddressChoice выбор адреса: сохраненный ИЛИ введенный вручную
// Tagged-вариант исключает одновременное заполнение обоих
type AddressChoice struct {
	Kind           AddressKind     `json:"kind"`
	SavedAddressID string          `json:"savedAddressId,omitempty"`
	Freeform       FreeformAddress `json:"freeform,omitempty"`
}

// ExtraSelection выбранная дополнительная услуга с количеством
// Записи с quantity = 0 в списке не хранятся
type ExtraSelection struct {
	ExtraID  string `json:"extraId"`
	Quantity int    `json:"quantity"`
}

// BookingFormState агрегат всех выборов пользователя в мастере бронирования
// Владелец - сессия мастера; изменяется только через ApplyUpdate и явные
// операции со слотами/адресом/клинером
type BookingFormState struct {
	ServiceType  string `json:"serviceType"`
	PropertyType string `json:"propertyType"`
	NumRooms     int    `json:"numRooms"`
	NumBathrooms int    `json:"numBathrooms"`
	AreaSqm      string `json:"areaSqm"`
	HasPets      bool   `json:"hasPets"`

	Extras    []ExtraSelection `json:"extras"`
	TimeSlots []TimeSlot       `json:"timeSlots"`

	Address        AddressChoice `json:"address"`
	SelectedCityID string        `json:"selectedCityId"`
	SelectedAreaID string        `json:"selectedAreaId"`

	PreferredCleanerID string           `json:"preferredCleanerId"`
	SuggestedStartTime types.TimeString `json:"suggestedStartTime"`

	SpecialInstructions string `json:"specialInstructions"`
}

// NewBookingFormState создает форму с дефолтными значениями
func NewBookingFormState() *BookingFormState {
	return &BookingFormState{
		PropertyType: "apartment",
		NumRooms:     MinRooms,
		NumBathrooms: MinBathrooms,
		Extras:       []ExtraSelection{},
		TimeSlots:    []TimeSlot{},
		Address:      AddressChoice{Kind: AddressKindNone},
	}
}

// FormUpdate частичное обновление формы
// Заполненные (не-nil) поля заменяют соответствующие поля формы
// SelectedCityID и SelectedAreaID - ручной выбор города/района из списка,
// когда автоматическая привязка адреса не распознала район
type FormUpdate struct {
	ServiceType         *string           `json:"serviceType,omitempty"`
	PropertyType        *string           `json:"propertyType,omitempty"`
	NumRooms            *int              `json:"numRooms,omitempty"`
	NumBathrooms        *int              `json:"numBathrooms,omitempty"`
	AreaSqm             *string           `json:"areaSqm,omitempty"`
	HasPets             *bool             `json:"hasPets,omitempty"`
	Extras              *[]ExtraSelection `json:"extras,omitempty"`
	SelectedCityID      *string           `json:"selectedCityId,omitempty"`
	SelectedAreaID      *string           `json:"selectedAreaId,omitempty"`
	SpecialInstructions *string           `json:"specialInstructions,omitempty"`
}

// ApplyUpdate применяет частичное обновление (shallow-merge не-nil полей)
// Записи extras с количеством < 1 отбрасываются
func (f *BookingFormState) ApplyUpdate(u FormUpdate) {
	if u.ServiceType != nil {
		f.ServiceType = *u.ServiceType
	}
	if u.PropertyType != nil {
		f.PropertyType = *u.PropertyType
	}
	if u.NumRooms != nil {
		f.NumRooms = *u.NumRooms
	}
	if u.NumBathrooms != nil {
		f.NumBathrooms = *u.NumBathrooms
	}
	if u.AreaSqm != nil {
		f.AreaSqm = *u.AreaSqm
	}
	if u.HasPets != nil {
		f.HasPets = *u.HasPets
	}
	if u.Extras != nil {
		f.Extras = normalizeExtras(*u.Extras)
	}
	if u.SelectedCityID != nil {
		// Смена города сбрасывает район: район принадлежит городу
		if f.SelectedCityID != *u.SelectedCityID {
			f.SelectedAreaID = ""
		}
		f.SelectedCityID = *u.SelectedCityID
	}
	if u.SelectedAreaID != nil {
		f.SelectedAreaID = *u.SelectedAreaID
	}
	if u.SpecialInstructions != nil {
		f.SpecialInstructions = *u.SpecialInstructions
	}
}

// normalizeExtras отбрасывает позиции с quantity < 1, сохраняя порядок
func normalizeExtras(extras []ExtraSelection) []ExtraSelection {
	result := make([]ExtraSelection, 0, len(extras))
	for _, e := range extras {
		if e.Quantity >= 1 {
			result = append(result, e)
		}
	}
	return result
}

// SetSavedAddress выбирает сохраненный адрес и сбрасывает ручной ввод
func (f *BookingFormState) SetSavedAddress(addressID, cityID, areaID string) {
	f.Address = AddressChoice{
		Kind:           AddressKindSaved,
		SavedAddressID: addressID,
	}
	f.SelectedCityID = cityID
	f.SelectedAreaID = areaID
}

// SetFreeformAddress выбирает введенный вручную адрес и сбрасывает сохраненный
// Floor и Apartment обновляются только при непустых значениях -
// иначе сохраняются ранее введенные
func (f *BookingFormState) SetFreeformAddress(addr FreeformAddress, cityID, areaID string) {
	prev := f.Address.Freeform
	if addr.Floor == "" {
		addr.Floor = prev.Floor
	}
	if addr.Apartment == "" {
		addr.Apartment = prev.Apartment
	}

	f.Address = AddressChoice{
		Kind:     AddressKindFreeform,
		Freeform: addr,
	}
	f.SelectedCityID = cityID
	f.SelectedAreaID = areaID
}

// SelectCleaner переключает выбор предпочитаемого клинера
// Повторный выбор текущего клинера (или пустой id - "любой исполнитель")
// сбрасывает выбор
func (f *BookingFormState) SelectCleaner(cleanerID string, suggestedStartTime types.TimeString) {
	if cleanerID == "" || cleanerID == f.PreferredCleanerID {
		f.PreferredCleanerID = ""
		f.SuggestedStartTime = ""
		return
	}
	f.PreferredCleanerID = cleanerID
	f.SuggestedStartTime = suggestedStartTime
}

// ParsedAreaSqm возвращает площадь как число (0, если поле пустое или некорректное)
func (f *BookingFormState) ParsedAreaSqm() float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(f.AreaSqm), 64)
	if err != nil {
		return 0
	}
	return v
}

// PricingSnapshot снимок полей, влияющих на стоимость
// Используется координатором пересчета цены для сравнения "до/после"
type PricingSnapshot struct {
	ServiceType  string
	PropertyType string
	NumRooms     int
	NumBathrooms int
	AreaSqm      string
	HasPets      bool
	Extras       []ExtraSelection
}

// PricingSnapshot возвращает текущий снимок полей, влияющих на стоимость
func (f *BookingFormState) PricingSnapshot() PricingSnapshot {
	extras := make([]ExtraSelection, len(f.Extras))
	copy(extras, f.Extras)
	return PricingSnapshot{
		ServiceType:  f.ServiceType,
		PropertyType: f.PropertyType,
		NumRooms:     f.NumRooms,
		NumBathrooms: f.NumBathrooms,
		AreaSqm:      f.AreaSqm,
		HasPets:      f.HasPets,
		Extras:       extras,
	}
}

// Equal сравнивает два снимка ценообразующих полей
func (s PricingSnapshot) Equal(other PricingSnapshot) bool {
	if s.ServiceType != other.ServiceType ||
		s.PropertyType != other.PropertyType ||
		s.NumRooms != other.NumRooms ||
		s.NumBathrooms != other.NumBathrooms ||
		s.AreaSqm != other.AreaSqm ||
		s.HasPets != other.HasPets {
		return false
	}
	if len(s.Extras) != len(other.Extras) {
		return false
	}
	for i := range s.Extras {
		if s.Extras[i] != other.Extras[i] {
			return false
		}
	}
	return true
}
