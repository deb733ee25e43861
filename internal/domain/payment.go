package domain

import "time"

// PaymentType describes what a payment was meant to cover
type PaymentType string

const (
	PaymentTypeAdvance PaymentType = "advance"
	PaymentTypeFull    PaymentType = "full"
	PaymentTypeBalance PaymentType = "balance"
)

// PaymentRecordStatus is the outcome of a recorded payment
type PaymentRecordStatus string

const (
	PaymentSuccess PaymentRecordStatus = "success"
	PaymentPending PaymentRecordStatus = "pending"
	PaymentFailed  PaymentRecordStatus = "failed"
)

// Payment represents a single payment recorded against a booking
type Payment struct {
	ID            string
	BookingID     string
	Amount        int64
	Type          PaymentType
	Method        PaymentMethod
	Status        PaymentRecordStatus
	TransactionID *string
	PaidAt        time.Time
}

// IsSuccessful returns true if the payment counts toward the booking's paid total
func (p *Payment) IsSuccessful() bool {
	return p.Status == PaymentSuccess
}

// Clone returns a deep copy of the payment
func (p *Payment) Clone() *Payment {
	if p == nil {
		return nil
	}
	c := *p
	if p.TransactionID != nil {
		trx := *p.TransactionID
		c.TransactionID = &trx
	}
	return &c
}

// SumSuccessful returns the total of successful payments
func SumSuccessful(payments []*Payment) int64 {
	var total int64
	for _, p := range payments {
		if p.IsSuccessful() {
			total += p.Amount
		}
	}
	return total
}
