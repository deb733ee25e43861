package seed

import (
	"context"

	"github.com/m04kA/HallBookingService/internal/domain"
)

// Store интерфейс хранилища, в которое загружаются данные
type Store interface {
	AddBooking(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	AddPayment(ctx context.Context, payment *domain.Payment) (*domain.Booking, error)
	AddCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	GetCustomer(ctx context.Context, email string) (*domain.Customer, error)
}

// SlotCatalog интерфейс каталога слотов
type SlotCatalog interface {
	FindByLabel(label string) (domain.TimeSlot, bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
