package domain

// Рабочее окно для выбора времени уборки
const (
	// DayOpenTime начало рабочего дня - первый возможный слот начала
	DayOpenTime = "08:00"

	// LastStartTime последнее возможное время начала уборки
	LastStartTime = "18:00"

	// DayCloseTime время, к которому уборка должна закончиться
	DayCloseTime = "20:00"

	// SlotStepMinutes шаг сетки времени (полчаса)
	SlotStepMinutes = 30
)

// Ограничения формы бронирования
const (
	// MaxTimeSlots максимальное количество предложенных клиентом временных окон
	MaxTimeSlots = 5

	// MaxSuggestions максимальное количество показываемых кандидатов-клинеров
	MaxSuggestions = 5

	// MinRooms минимальное количество комнат
	MinRooms = 1

	// MinBathrooms минимальное количество санузлов
	MinBathrooms = 1

	// MaxSpecialInstructionsLength максимальная длина пожеланий клиента
	MaxSpecialInstructionsLength = 1000
)

// DefaultEstimateDebounceMS пауза (мс) перед запросом пересчета цены
// после последнего изменения полей, влияющих на стоимость
const DefaultEstimateDebounceMS = 400

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
