package get_booking_payments

import (
	"context"

	"github.com/m04kA/HallBookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetPayments(ctx context.Context, id string) (*models.PaymentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
