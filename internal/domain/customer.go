package domain

import "time"

// Customer represents a hall customer; Email is the business key
type Customer struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Address   *string
	CreatedAt time.Time
}

// Clone returns a deep copy of the customer
func (c *Customer) Clone() *Customer {
	if c == nil {
		return nil
	}
	cp := *c
	if c.Address != nil {
		addr := *c.Address
		cp.Address = &addr
	}
	return &cp
}

// CustomerPatch holds the fields to merge into an existing customer
type CustomerPatch struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
}

// Apply merges the patch into the customer
func (c *Customer) Apply(p CustomerPatch) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Email != nil {
		c.Email = NormalizeEmail(*p.Email)
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Address != nil {
		addr := *p.Address
		c.Address = &addr
	}
}

// CustomerSummary is a view computed from the registry rather than stored on the customer
type CustomerSummary struct {
	Customer         *Customer
	Bookings         []*Booking // newest event date first
	TotalSpent       int64
	TotalBookings    int
	UpcomingBookings int
}

// SummarizeCustomer builds the customer view from that customer's bookings.
// Spend counts the paid amount of every booking whose payment status is not pending.
func SummarizeCustomer(c *Customer, bookings []*Booking, today time.Time) *CustomerSummary {
	summary := &CustomerSummary{
		Customer:      c,
		Bookings:      bookings,
		TotalBookings: len(bookings),
	}

	today = NormalizeDate(today)
	for _, b := range bookings {
		if b.PaymentStatus != PaymentStatusPending {
			summary.TotalSpent += b.PaidAmount
		}
		if !b.EventDate.Before(today) && b.Status == StatusConfirmed {
			summary.UpcomingBookings++
		}
	}

	return summary
}
