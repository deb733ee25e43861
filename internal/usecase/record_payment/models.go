package record_payment

import (
	"github.com/m04kA/HallBookingService/internal/domain"
)

// Request модель запроса на запись платежа
type Request struct {
	BookingID     string  `json:"-"`
	Amount        int64   `json:"amount" validate:"gt=0"`
	Type          string  `json:"type" validate:"required,oneof=advance full balance"`
	Method        string  `json:"method" validate:"required,oneof=cash card bank_transfer"`
	Status        string  `json:"status" validate:"omitempty,oneof=success pending failed"` // пусто - success
	TransactionID *string `json:"transactionId" validate:"omitempty,max=100"`
}

// Response модель ответа с записанным платежом
type Response struct {
	Payment *domain.Payment // Записанный платеж
	Booking *domain.Booking // Бронирование после пересчета оплаченной суммы
}
