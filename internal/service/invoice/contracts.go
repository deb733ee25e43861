package invoice

import (
	"context"
	"time"

	"github.com/m04kA/HallBookingService/internal/domain"
)

// BookingRepository интерфейс хранилища бронирований и платежей
type BookingRepository interface {
	GetBooking(ctx context.Context, id string) (*domain.Booking, error)
	GetPaymentsByBooking(ctx context.Context, bookingID string) ([]*domain.Payment, error)
}

// NumberStore хранит выданные номера счетов, чтобы повторный рендер давал тот же номер
type NumberStore interface {
	// Assign возвращает номер счета бронирования, выдавая новый при первом обращении
	Assign(bookingID string, issuedAt time.Time) string
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
