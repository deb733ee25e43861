package models

import (
	"errors"
	"strings"
	"time"

	"github.com/m04kA/HallBookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidPaymentStatus возвращается при некорректном статусе оплаты
	ErrInvalidPaymentStatus = errors.New("invalid payment status")

	// ErrInvalidPaymentMethod возвращается при некорректном способе оплаты
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
)

// Request модели

// UpdateBookingRequest запрос на частичное обновление бронирования; nil - поле не меняется
type UpdateBookingRequest struct {
	CustomerName  *string `json:"customerName,omitempty"`
	CustomerEmail *string `json:"customerEmail,omitempty"`
	CustomerPhone *string `json:"customerPhone,omitempty"`
	EventDate     *string `json:"date,omitempty"` // "2025-10-15"
	TimeSlot      *string `json:"timeSlot,omitempty"`
	EventType     *string `json:"eventType,omitempty"`
	GuestCount    *int    `json:"guestCount,omitempty"`
	TotalAmount   *int64  `json:"totalAmount,omitempty"`
	PaymentMethod *string `json:"paymentMethod,omitempty"`
	Status        *string `json:"status,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

// ToDomainPatch конвертирует request в domain patch
func (r *UpdateBookingRequest) ToDomainPatch() (domain.BookingPatch, error) {
	patch := domain.BookingPatch{
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		TimeSlot:      r.TimeSlot,
		EventType:     r.EventType,
		GuestCount:    r.GuestCount,
		TotalAmount:   r.TotalAmount,
		Notes:         r.Notes,
	}

	if r.EventDate != nil {
		date, err := ParseDate(*r.EventDate)
		if err != nil {
			return patch, err
		}
		patch.EventDate = &date
	}

	if r.PaymentMethod != nil {
		method, err := ToDomainPaymentMethod(*r.PaymentMethod)
		if err != nil {
			return patch, err
		}
		patch.PaymentMethod = &method
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return patch, err
		}
		patch.Status = &status
	}

	return patch, nil
}

// ListBookingsRequest запрос на получение списка бронирований
type ListBookingsRequest struct {
	Date             *time.Time // Конкретная дата (опционально)
	From             *time.Time // Начало периода (опционально)
	To               *time.Time // Конец периода (опционально)
	Status           *string    // Фильтр по статусу (опционально)
	PaymentStatus    *string    // Фильтр по статусу оплаты (опционально)
	CustomerEmail    *string    // Фильтр по клиенту (опционально)
	Query            string     // Поиск по имени, email или телефону (опционально)
	IncludeCancelled bool       // Включить отменённые бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		Date:             r.Date,
		From:             r.From,
		To:               r.To,
		CustomerEmail:    r.CustomerEmail,
		Query:            r.Query,
		IncludeCancelled: r.IncludeCancelled,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	if r.PaymentStatus != nil {
		paymentStatus, err := ToDomainPaymentStatus(*r.PaymentStatus)
		if err != nil {
			return filter, err
		}
		filter.PaymentStatus = &paymentStatus
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            string  `json:"id"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone string  `json:"customerPhone"`
	Date          string  `json:"date"` // "2025-10-15"
	TimeSlot      string  `json:"timeSlot"`
	EventType     string  `json:"eventType"`
	GuestCount    int     `json:"guestCount"`
	TotalAmount   int64   `json:"totalAmount"`
	PaidAmount    int64   `json:"paidAmount"`
	Balance       int64   `json:"balance"`
	PaymentStatus string  `json:"paymentStatus"`
	PaymentMethod string  `json:"paymentMethod"`
	Status        string  `json:"status"`
	Notes         *string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// PaymentResponse ответ с данными платежа
type PaymentResponse struct {
	ID            string    `json:"id"`
	BookingID     string    `json:"bookingId"`
	Amount        int64     `json:"amount"`
	Type          string    `json:"type"`
	Method        string    `json:"method"`
	Status        string    `json:"status"`
	TransactionID *string   `json:"transactionId,omitempty"`
	PaidAt        time.Time `json:"paidAt"`
}

// PaymentListResponse ответ со списком платежей
type PaymentListResponse struct {
	Payments []PaymentResponse `json:"payments"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:            b.ID,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		Date:          b.EventDate.Format(domain.DateFormat),
		TimeSlot:      b.TimeSlot,
		EventType:     b.EventType,
		GuestCount:    b.GuestCount,
		TotalAmount:   b.TotalAmount,
		PaidAmount:    b.PaidAmount,
		Balance:       b.Balance(),
		PaymentStatus: string(b.PaymentStatus),
		PaymentMethod: string(b.PaymentMethod),
		Status:        string(b.Status),
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// FromDomainPayment конвертирует domain платеж в DTO
func FromDomainPayment(p *domain.Payment) *PaymentResponse {
	if p == nil {
		return nil
	}

	return &PaymentResponse{
		ID:            p.ID,
		BookingID:     p.BookingID,
		Amount:        p.Amount,
		Type:          string(p.Type),
		Method:        string(p.Method),
		Status:        string(p.Status),
		TransactionID: p.TransactionID,
		PaidAt:        p.PaidAt,
	}
}

// FromDomainPaymentList конвертирует список платежей в DTO
func FromDomainPaymentList(payments []*domain.Payment) *PaymentListResponse {
	resp := &PaymentListResponse{
		Payments: make([]PaymentResponse, 0, len(payments)),
	}

	for _, p := range payments {
		if paymentResp := FromDomainPayment(p); paymentResp != nil {
			resp.Payments = append(resp.Payments, *paymentResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(strings.ToLower(strings.TrimSpace(status)))

	for _, valid := range domain.BookingStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}

// ToDomainPaymentStatus конвертирует строку в domain.PaymentStatus с валидацией
func ToDomainPaymentStatus(status string) (domain.PaymentStatus, error) {
	s := domain.PaymentStatus(strings.ToLower(strings.TrimSpace(status)))

	for _, valid := range domain.PaymentStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidPaymentStatus
}

// ToDomainPaymentMethod конвертирует строку в domain.PaymentMethod с валидацией
func ToDomainPaymentMethod(method string) (domain.PaymentMethod, error) {
	m := domain.PaymentMethod(strings.ToLower(strings.TrimSpace(method)))

	for _, valid := range domain.PaymentMethods {
		if m == valid {
			return m, nil
		}
	}

	return "", ErrInvalidPaymentMethod
}

// ParseDate разбирает дату в формате YYYY-MM-DD
func ParseDate(value string) (time.Time, error) {
	date, err := time.Parse(domain.DateFormat, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return date, nil
}
