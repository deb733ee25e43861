package record_payment

import (
	bookingmodels "github.com/m04kA/HallBookingService/internal/service/bookings/models"
	recordPayment "github.com/m04kA/HallBookingService/internal/usecase/record_payment"
)

// RecordPaymentRequest HTTP request model
type RecordPaymentRequest struct {
	Amount        int64   `json:"amount"`
	Type          string  `json:"type"`   // advance | full | balance
	Method        string  `json:"method"` // cash | card | bank_transfer
	Status        string  `json:"status,omitempty"`
	TransactionID *string `json:"transactionId,omitempty"`
}

// RecordPaymentResponse HTTP response model
type RecordPaymentResponse struct {
	Payment bookingmodels.PaymentResponse `json:"payment"`
	Booking bookingmodels.BookingResponse `json:"booking"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RecordPaymentRequest) ToUseCaseRequest(bookingID string) *recordPayment.Request {
	return &recordPayment.Request{
		BookingID:     bookingID,
		Amount:        r.Amount,
		Type:          r.Type,
		Method:        r.Method,
		Status:        r.Status,
		TransactionID: r.TransactionID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *recordPayment.Response) *RecordPaymentResponse {
	return &RecordPaymentResponse{
		Payment: *bookingmodels.FromDomainPayment(resp.Payment),
		Booking: *bookingmodels.FromDomainBooking(resp.Booking),
	}
}
