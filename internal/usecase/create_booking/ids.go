package create_booking

import "github.com/google/uuid"

// UUIDGenerator генерирует идентификаторы на основе UUID v4
type UUIDGenerator struct{}

// NewBookingID возвращает идентификатор бронирования
func (UUIDGenerator) NewBookingID() string {
	return "book-" + uuid.NewString()
}

// NewPaymentID возвращает идентификатор платежа
func (UUIDGenerator) NewPaymentID() string {
	return "pay-" + uuid.NewString()
}
