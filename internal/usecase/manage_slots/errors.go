package manage_slots

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена
	ErrSessionNotFound = errors.New("manage_slots: session not found")

	// ErrSessionCompleted возвращается при попытке изменить завершенную сессию
	ErrSessionCompleted = errors.New("manage_slots: session already completed")

	// ErrSlotLimitReached возвращается при превышении лимита временных окон
	ErrSlotLimitReached = errors.New("manage_slots: slot limit reached")

	// ErrDuplicateSlot возвращается при добавлении уже существующего окна
	ErrDuplicateSlot = errors.New("manage_slots: slot already added")

	// ErrSlotTooShort возвращается, когда окно короче минимальной
	// длительности уборки по текущей оценке
	ErrSlotTooShort = errors.New("manage_slots: slot is shorter than the minimum duration")

	// ErrSlotNotFound возвращается при удалении окна по несуществующему индексу
	ErrSlotNotFound = errors.New("manage_slots: slot not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("manage_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("manage_slots: internal error")
)
