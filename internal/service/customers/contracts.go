package customers

import (
	"context"

	"github.com/m04kA/HallBookingService/internal/domain"
)

// CustomerRepository интерфейс реестра клиентов
type CustomerRepository interface {
	AddCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, id string, patch domain.CustomerPatch) (*domain.Customer, error)
	GetCustomer(ctx context.Context, email string) (*domain.Customer, error)
	ListCustomers(ctx context.Context) ([]*domain.Customer, error)
	CustomerSummary(ctx context.Context, email string) (*domain.CustomerSummary, error)
}

// IDGenerator генератор идентификаторов клиентов
type IDGenerator interface {
	NewID() string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
