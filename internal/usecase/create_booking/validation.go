package create_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/HallBookingService/pkg/validate"
)

const msgAdvanceExceedsTotal = "advance cannot exceed total amount"

// normalizeRequest обрезает пробелы в строковых полях
func normalizeRequest(req *Request) {
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	req.CustomerEmail = strings.TrimSpace(req.CustomerEmail)
	req.CustomerPhone = strings.TrimSpace(req.CustomerPhone)
	req.Date = strings.TrimSpace(req.Date)
	req.TimeSlot = strings.TrimSpace(req.TimeSlot)
	req.EventType = strings.TrimSpace(req.EventType)
	req.PaymentMethod = strings.ToLower(strings.TrimSpace(req.PaymentMethod))
}

// validateRequest валидирует входные данные запроса и собирает ошибки по всем полям
func validateRequest(req *Request) error {
	fields, err := validate.Struct(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if req.TotalAmount != nil && req.AdvanceAmount > *req.TotalAmount {
		if fields == nil {
			fields = make(map[string]string, 1)
		}
		fields["advanceAmount"] = msgAdvanceExceedsTotal
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
