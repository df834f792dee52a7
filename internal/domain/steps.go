package domain

import "strings"

// Step шаг мастера бронирования
type Step int

const (
	StepService  Step = 0 // выбор услуги
	StepDetails  Step = 1 // параметры жилья
	StepSchedule Step = 2 // выбор временных окон
	StepAddress  Step = 3 // адрес
	StepProvider Step = 4 // выбор исполнителя (опционально)
	StepSummary  Step = 5 // итог и отправка
)

// FirstStep первый шаг мастера
const FirstStep = StepService

// LastStep последний шаг мастера
const LastStep = StepSummary

// IsValid возвращает true для шагов в диапазоне мастера
func (s Step) IsValid() bool {
	return s >= FirstStep && s <= LastStep
}

// stepValidators таблица предикатов "можно продолжить" по шагам
// Шаг -> условие доступности кнопки "Продолжить"
var stepValidators = map[Step]func(f *BookingFormState) bool{
	StepService: func(f *BookingFormState) bool {
		return f.ServiceType != ""
	},
	StepDetails: func(f *BookingFormState) bool {
		return f.NumRooms >= MinRooms &&
			f.NumBathrooms >= MinBathrooms &&
			strings.TrimSpace(f.AreaSqm) != "" &&
			f.ParsedAreaSqm() > 0
	},
	StepSchedule: func(f *BookingFormState) bool {
		return len(f.TimeSlots) >= 1
	},
	StepAddress: func(f *BookingFormState) bool {
		if f.Address.Kind == AddressKindSaved && f.Address.SavedAddressID != "" {
			return true
		}
		return f.Address.Kind == AddressKindFreeform &&
			strings.TrimSpace(f.Address.Freeform.StreetAddress) != "" &&
			f.SelectedCityID != "" &&
			f.SelectedAreaID != ""
	},
	StepProvider: func(f *BookingFormState) bool {
		// Выбор исполнителя опционален
		return true
	},
}

// CanAdvance возвращает true, если с шага step можно перейти дальше
// Для последнего шага - можно ли отправить бронирование
// Функция чистая: вычисляется заново при каждом изменении формы
func CanAdvance(step Step, f *BookingFormState, isAuthenticated bool) bool {
	if step == StepSummary {
		return isAuthenticated
	}
	validator, ok := stepValidators[step]
	if !ok {
		return false
	}
	return validator(f)
}
