package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/HallBookingService/internal/domain"
	"github.com/m04kA/HallBookingService/internal/service/notifications"
)

// BookingRepository интерфейс реестра бронирований
type BookingRepository interface {
	GetBookingsByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
	AddBooking(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	AddPayment(ctx context.Context, payment *domain.Payment) (*domain.Booking, error)
}

// SlotCatalog интерфейс каталога временных слотов
type SlotCatalog interface {
	FindByLabel(label string) (domain.TimeSlot, bool)
}

// CustomerRegistrar заводит клиента по контактам бронирования, если его еще нет
type CustomerRegistrar interface {
	Ensure(ctx context.Context, name, email, phone string) (*domain.Customer, error)
}

// InvoiceNumberer выдает номер счета бронирования
type InvoiceNumberer interface {
	InvoiceNumber(bookingID string) string
}

// Notifier отправляет подтверждение бронирования
type Notifier interface {
	SendConfirmation(ctx context.Context, b *domain.Booking, invoiceNumber string) (*notifications.Report, error)
}

// Metrics интерфейс метрик бронирований
type Metrics interface {
	IncBookingCreated(status string)
}

// IDGenerator генератор идентификаторов
type IDGenerator interface {
	NewBookingID() string
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
