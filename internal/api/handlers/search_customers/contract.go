package search_customers

import (
	"context"

	"github.com/m04kA/HallBookingService/internal/service/customers/models"
)

type CustomerService interface {
	Search(ctx context.Context, query string) (*models.CustomerListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
