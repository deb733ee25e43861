package record_payment

import (
	"context"
	"time"

	"github.com/m04kA/HallBookingService/internal/domain"
)

// BookingRepository интерфейс реестра бронирований и платежей
type BookingRepository interface {
	GetBooking(ctx context.Context, id string) (*domain.Booking, error)
	AddPayment(ctx context.Context, payment *domain.Payment) (*domain.Booking, error)
}

// Metrics интерфейс метрик платежей
type Metrics interface {
	IncPaymentRecorded(status string)
}

// IDGenerator генератор идентификаторов платежей
type IDGenerator interface {
	NewPaymentID() string
}

// TransactionManager интерфейс для сериализации составных операций
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
