package create_booking

import (
	"github.com/m04kA/HallBookingService/internal/domain"
	"github.com/m04kA/HallBookingService/internal/service/notifications"
)

// Request модель запроса на создание бронирования
type Request struct {
	CustomerName  string  `json:"customerName" validate:"required,min=2,max=100"`
	CustomerEmail string  `json:"customerEmail" validate:"required,hall_email"`
	CustomerPhone string  `json:"customerPhone" validate:"required,hall_phone"`
	Date          string  `json:"date" validate:"required,datetime=2006-01-02"` // "2026-10-15"
	TimeSlot      string  `json:"timeSlot" validate:"required"`
	EventType     string  `json:"eventType" validate:"required,event_type"`
	GuestCount    int     `json:"guestCount" validate:"required,min=1,max=10000"`
	TotalAmount   *int64  `json:"totalAmount" validate:"omitempty,min=0"` // nil - рассчитать по слоту и числу гостей
	AdvanceAmount int64   `json:"advanceAmount" validate:"min=0"`
	PaymentMethod string  `json:"paymentMethod" validate:"required,oneof=cash card bank_transfer"`
	Notes         *string `json:"notes" validate:"omitempty,max=500"`
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking       *domain.Booking       // Созданное бронирование с учетом аванса
	InvoiceNumber string                // Номер счета, закрепленный за бронированием
	Notification  *notifications.Report // Результат отправки подтверждения (nil, если не отправлялось)
}
