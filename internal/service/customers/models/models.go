package models

import (
	"time"

	"github.com/m04kA/HallBookingService/internal/domain"
	bookingmodels "github.com/m04kA/HallBookingService/internal/service/bookings/models"
)

// Request модели

// CreateCustomerRequest запрос на создание клиента
type CreateCustomerRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Address *string `json:"address,omitempty"`
}

// UpdateCustomerRequest запрос на частичное обновление клиента; nil - поле не меняется
type UpdateCustomerRequest struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

// IsEmpty возвращает true, если запрос ничего не меняет
func (r *UpdateCustomerRequest) IsEmpty() bool {
	return r.Name == nil && r.Email == nil && r.Phone == nil && r.Address == nil
}

// ToDomainPatch конвертирует request в domain patch
func (r *UpdateCustomerRequest) ToDomainPatch() domain.CustomerPatch {
	return domain.CustomerPatch{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Address: r.Address,
	}
}

// Response модели

// CustomerResponse ответ с данными клиента
type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   *string   `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// CustomerListResponse ответ со списком клиентов
type CustomerListResponse struct {
	Customers []CustomerResponse `json:"customers"`
}

// CustomerSummaryResponse клиент вместе с вычисленной статистикой
type CustomerSummaryResponse struct {
	CustomerResponse
	TotalSpent       int64                           `json:"totalSpent"`
	TotalBookings    int                             `json:"totalBookings"`
	UpcomingBookings int                             `json:"upcomingBookings"`
	Bookings         []bookingmodels.BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainCustomer конвертирует domain модель в DTO
func FromDomainCustomer(c *domain.Customer) *CustomerResponse {
	if c == nil {
		return nil
	}

	return &CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
	}
}

// FromDomainCustomerList конвертирует список клиентов в DTO
func FromDomainCustomerList(customers []*domain.Customer) *CustomerListResponse {
	resp := &CustomerListResponse{
		Customers: make([]CustomerResponse, 0, len(customers)),
	}

	for _, c := range customers {
		if customerResp := FromDomainCustomer(c); customerResp != nil {
			resp.Customers = append(resp.Customers, *customerResp)
		}
	}

	return resp
}

// FromDomainSummary конвертирует вычисленное представление клиента в DTO
func FromDomainSummary(s *domain.CustomerSummary) *CustomerSummaryResponse {
	if s == nil || s.Customer == nil {
		return nil
	}

	return &CustomerSummaryResponse{
		CustomerResponse: *FromDomainCustomer(s.Customer),
		TotalSpent:       s.TotalSpent,
		TotalBookings:    s.TotalBookings,
		UpcomingBookings: s.UpcomingBookings,
		Bookings:         bookingmodels.FromDomainBookingList(s.Bookings).Bookings,
	}
}
