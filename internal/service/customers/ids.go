package customers

import "github.com/google/uuid"

// UUIDGenerator генерирует идентификаторы вида "cust-<uuid>"
type UUIDGenerator struct{}

// NewID возвращает новый идентификатор клиента
func (UUIDGenerator) NewID() string {
	return "cust-" + uuid.NewString()
}
