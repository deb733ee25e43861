package reports

import (
	"context"
	"time"

	"github.com/m04kA/HallBookingService/internal/domain"
)

// Repository интерфейс реестра для построения отчетов
type Repository interface {
	ListBookings(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	ListPayments(ctx context.Context) ([]*domain.Payment, error)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальная реализация TimeProvider
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
