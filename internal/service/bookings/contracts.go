package bookings

import (
	"context"
	"time"

	"github.com/m04kA/HallBookingService/internal/domain"
)

// BookingRepository интерфейс реестра бронирований
type BookingRepository interface {
	GetBooking(ctx context.Context, id string) (*domain.Booking, error)
	GetBookingsByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
	ListBookings(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	UpdateBooking(ctx context.Context, id string, patch domain.BookingPatch) (*domain.Booking, error)
	DeleteBooking(ctx context.Context, id string) error
	GetPaymentsByBooking(ctx context.Context, bookingID string) ([]*domain.Payment, error)
}

// CustomerRegistry интерфейс регистрации клиентов по контактам бронирования
type CustomerRegistry interface {
	Ensure(ctx context.Context, name, email, phone string) (*domain.Customer, error)
}

// SlotCatalog интерфейс каталога временных слотов
type SlotCatalog interface {
	FindByLabel(label string) (domain.TimeSlot, bool)
}

// TransactionManager интерфейс для сериализации составных операций
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
