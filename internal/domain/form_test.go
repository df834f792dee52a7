package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WizardService/pkg/ptr"
)

func TestNewBookingFormState_Defaults(t *testing.T) {
	form := NewBookingFormState()

	assert.Equal(t, "apartment", form.PropertyType)
	assert.Equal(t, 1, form.NumRooms)
	assert.Equal(t, 1, form.NumBathrooms)
	assert.Empty(t, form.ServiceType)
	assert.Empty(t, form.Extras)
	assert.Empty(t, form.TimeSlots)
	assert.Equal(t, AddressKindNone, form.Address.Kind)
}

func TestApplyUpdate_PartialMerge(t *testing.T) {
	form := NewBookingFormState()
	form.ServiceType = "STANDARD_CLEANING"
	form.SpecialInstructions = "ключи у консьержа"

	form.ApplyUpdate(FormUpdate{
		NumRooms: ptr.Ptr(3),
		AreaSqm:  ptr.Ptr("75"),
	})

	// Обновились только переданные поля
	assert.Equal(t, 3, form.NumRooms)
	assert.Equal(t, "75", form.AreaSqm)
	assert.Equal(t, "STANDARD_CLEANING", form.ServiceType)
	assert.Equal(t, "ключи у консьержа", form.SpecialInstructions)
	assert.Equal(t, 1, form.NumBathrooms)
}

func TestApplyUpdate_ExtrasDropZeroQuantity(t *testing.T) {
	form := NewBookingFormState()

	form.ApplyUpdate(FormUpdate{
		Extras: ptr.Ptr([]ExtraSelection{
			{ExtraID: "WINDOW_CLEANING", Quantity: 2},
			{ExtraID: "IRONING", Quantity: 0},
			{ExtraID: "FRIDGE_CLEANING", Quantity: 1},
		}),
	})

	require.Len(t, form.Extras, 2)
	assert.Equal(t, "WINDOW_CLEANING", form.Extras[0].ExtraID)
	assert.Equal(t, "FRIDGE_CLEANING", form.Extras[1].ExtraID)
}

func TestApplyUpdate_ManualAreaSelection(t *testing.T) {
	form := NewBookingFormState()
	form.SelectedCityID = "city-bucharest"
	form.SelectedAreaID = "area-s1"

	// Смена города сбрасывает район прежнего города
	form.ApplyUpdate(FormUpdate{SelectedCityID: ptr.Ptr("city-cluj")})
	assert.Equal(t, "city-cluj", form.SelectedCityID)
	assert.Empty(t, form.SelectedAreaID)

	form.ApplyUpdate(FormUpdate{SelectedAreaID: ptr.Ptr("area-centru")})
	assert.Equal(t, "area-centru", form.SelectedAreaID)

	// Повторная установка того же города район не трогает
	form.ApplyUpdate(FormUpdate{SelectedCityID: ptr.Ptr("city-cluj")})
	assert.Equal(t, "area-centru", form.SelectedAreaID)
}

func TestAddressChoice_Exclusivity(t *testing.T) {
	form := NewBookingFormState()

	form.SetSavedAddress("addr-1", "city-1", "area-1")
	assert.Equal(t, AddressKindSaved, form.Address.Kind)
	assert.Equal(t, "addr-1", form.Address.SavedAddressID)

	// Переключение на ручной ввод сбрасывает сохраненный адрес
	form.SetFreeformAddress(FreeformAddress{
		StreetAddress: "Strada Aviatorilor 15",
		City:          "București",
	}, "city-1", "area-2")

	assert.Equal(t, AddressKindFreeform, form.Address.Kind)
	assert.Empty(t, form.Address.SavedAddressID)
	assert.Equal(t, "Strada Aviatorilor 15", form.Address.Freeform.StreetAddress)
	assert.Equal(t, "area-2", form.SelectedAreaID)
}

func TestSetFreeformAddress_KeepsFloorAndApartment(t *testing.T) {
	form := NewBookingFormState()
	form.SetFreeformAddress(FreeformAddress{
		StreetAddress: "Strada Aviatorilor 15",
		City:          "București",
		Floor:         "3",
		Apartment:     "12",
	}, "city-1", "area-1")

	// Повторный выбор кандидата без этажа и квартиры не затирает введенное
	form.SetFreeformAddress(FreeformAddress{
		StreetAddress: "Strada Aviatorilor 17",
		City:          "București",
	}, "city-1", "area-1")

	assert.Equal(t, "Strada Aviatorilor 17", form.Address.Freeform.StreetAddress)
	assert.Equal(t, "3", form.Address.Freeform.Floor)
	assert.Equal(t, "12", form.Address.Freeform.Apartment)
}

func TestSelectCleaner_Toggle(t *testing.T) {
	form := NewBookingFormState()

	form.SelectCleaner("cleaner-1", "10:00")
	assert.Equal(t, "cleaner-1", form.PreferredCleanerID)
	assert.Equal(t, "10:00", form.SuggestedStartTime.String())

	// Повторный выбор того же клинера сбрасывает выбор
	form.SelectCleaner("cleaner-1", "10:00")
	assert.Empty(t, form.PreferredCleanerID)
	assert.Empty(t, form.SuggestedStartTime)

	// Пустой id - "любой исполнитель"
	form.SelectCleaner("cleaner-2", "11:00")
	form.SelectCleaner("", "")
	assert.Empty(t, form.PreferredCleanerID)
}

func TestPricingSnapshot_Equal(t *testing.T) {
	form := NewBookingFormState()
	form.ServiceType = "STANDARD_CLEANING"
	form.Extras = []ExtraSelection{{ExtraID: "IRONING", Quantity: 1}}

	before := form.PricingSnapshot()

	// Пожелания не влияют на стоимость
	form.SpecialInstructions = "без химии"
	assert.True(t, before.Equal(form.PricingSnapshot()))

	form.NumRooms = 4
	assert.False(t, before.Equal(form.PricingSnapshot()))
}

func TestParsedAreaSqm(t *testing.T) {
	tests := []struct {
		name     string
		areaSqm  string
		expected float64
	}{
		{"valid integer", "75", 75},
		{"valid decimal", "62.5", 62.5},
		{"with spaces", " 80 ", 80},
		{"empty", "", 0},
		{"not a number", "abc", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := NewBookingFormState()
			form.AreaSqm = tt.areaSqm
			assert.Equal(t, tt.expected, form.ParsedAreaSqm())
		})
	}
}
