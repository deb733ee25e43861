package create_booking

import (
	"github.com/m04kA/HallBookingService/internal/api/handlers"
	bookingmodels "github.com/m04kA/HallBookingService/internal/service/bookings/models"
	createBooking "github.com/m04kA/HallBookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone string  `json:"customerPhone"`
	Date          string  `json:"date"`     // "2026-10-20"
	TimeSlot      string  `json:"timeSlot"` // "09:00 - 13:00"
	EventType     string  `json:"eventType"`
	GuestCount    int     `json:"guestCount"`
	TotalAmount   *int64  `json:"totalAmount,omitempty"`
	AdvanceAmount int64   `json:"advanceAmount"`
	PaymentMethod string  `json:"paymentMethod"`
	Notes         *string `json:"notes,omitempty"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	bookingmodels.BookingResponse
	InvoiceNumber string                         `json:"invoiceNumber"`
	Notification  *handlers.NotificationResponse `json:"notification,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		Date:          r.Date,
		TimeSlot:      r.TimeSlot,
		EventType:     r.EventType,
		GuestCount:    r.GuestCount,
		TotalAmount:   r.TotalAmount,
		AdvanceAmount: r.AdvanceAmount,
		PaymentMethod: r.PaymentMethod,
		Notes:         r.Notes,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		BookingResponse: *bookingmodels.FromDomainBooking(resp.Booking),
		InvoiceNumber:   resp.InvoiceNumber,
		Notification:    handlers.FromReport(resp.Notification),
	}
}
