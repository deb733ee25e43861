package get_customer

import (
	"context"

	"github.com/m04kA/HallBookingService/internal/service/customers/models"
)

type CustomerService interface {
	GetSummary(ctx context.Context, email string) (*models.CustomerSummaryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
