package send_reminder

import (
	"github.com/m04kA/HallBookingService/internal/api/handlers"
	sendReminder "github.com/m04kA/HallBookingService/internal/usecase/send_reminder"
)

// ReminderResponse HTTP response model
type ReminderResponse struct {
	BookingID    string                         `json:"bookingId"`
	Balance      int64                          `json:"balance"`
	Message      string                         `json:"message"`
	Notification *handlers.NotificationResponse `json:"notification"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *sendReminder.Response) *ReminderResponse {
	return &ReminderResponse{
		BookingID:    resp.BookingID,
		Balance:      resp.Balance,
		Message:      resp.Message,
		Notification: handlers.FromReport(resp.Report),
	}
}
