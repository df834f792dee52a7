package clock

import "time"

// SystemClock источник текущего времени для кода, который в тестах
// подменяет время через интерфейс TimeProvider
type SystemClock struct{}

// New создает системные часы
func New() *SystemClock {
	return &SystemClock{}
}

// Now возвращает текущее время
func (c *SystemClock) Now() time.Time {
	return time.Now()
}
