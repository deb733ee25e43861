package send_reminder

import (
	"context"

	"github.com/m04kA/HallBookingService/internal/domain"
	"github.com/m04kA/HallBookingService/internal/service/notifications"
)

// BookingRepository интерфейс реестра бронирований
type BookingRepository interface {
	GetBooking(ctx context.Context, id string) (*domain.Booking, error)
}

// Notifier отправляет напоминание об остатке
type Notifier interface {
	SendReminder(ctx context.Context, b *domain.Booking) (*notifications.Report, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
