package get_invoice

import (
	"context"

	"github.com/m04kA/HallBookingService/internal/service/invoice"
)

type InvoiceService interface {
	GetInvoice(ctx context.Context, bookingID string) (*invoice.Invoice, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
