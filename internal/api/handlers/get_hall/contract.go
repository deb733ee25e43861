package get_hall

import "github.com/m04kA/HallBookingService/internal/domain"

type SlotCatalog interface {
	Slots() []domain.TimeSlot
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
