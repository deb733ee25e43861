package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/HallBookingService/internal/domain"
)

// BookingRepository интерфейс реестра бронирований
type BookingRepository interface {
	// GetBookingsByDate получает все бронирования на дату, включая отмененные
	GetBookingsByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
}

// SlotCatalog интерфейс каталога временных слотов
type SlotCatalog interface {
	Slots() []domain.TimeSlot
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
