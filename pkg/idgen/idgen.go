package idgen

import "github.com/google/uuid"

// Generator генератор идентификаторов сессий
// Идентификатор играет роль capability: знание id дает доступ к сессии,
// поэтому значения должны быть неугадываемыми
type Generator struct{}

// New создает новый генератор
func New() *Generator {
	return &Generator{}
}

// NewID возвращает новый случайный идентификатор (UUID v4)
func (g *Generator) NewID() string {
	return uuid.NewString()
}
