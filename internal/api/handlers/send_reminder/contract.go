package send_reminder

import (
	"context"

	sendReminder "github.com/m04kA/HallBookingService/internal/usecase/send_reminder"
)

type SendReminderUseCase interface {
	Execute(ctx context.Context, bookingID string) (*sendReminder.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
