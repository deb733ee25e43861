package domain

import (
	"strings"
	"time"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// PaymentStatus is derived from the paid/total pair, never set directly
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusAdvance PaymentStatus = "advance"
	PaymentStatusFull    PaymentStatus = "full"
)

// PaymentMethod is the method of record; payments are recorded, not processed
type PaymentMethod string

const (
	MethodCash         PaymentMethod = "cash"
	MethodCard         PaymentMethod = "card"
	MethodBankTransfer PaymentMethod = "bank_transfer"
)

// Booking represents a reservation of the hall for one date and time slot
type Booking struct {
	ID string

	// Denormalized customer contact data
	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	EventDate  time.Time // calendar date, UTC midnight
	TimeSlot   string    // catalog label, e.g. "09:00 - 13:00"
	EventType  string
	GuestCount int

	TotalAmount   int64
	PaidAmount    int64
	PaymentStatus PaymentStatus
	PaymentMethod PaymentMethod

	Status BookingStatus
	Notes  *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DerivePaymentStatus classifies how much of the total has been paid
func DerivePaymentStatus(total, paid int64) PaymentStatus {
	switch {
	case paid <= 0:
		return PaymentStatusPending
	case paid >= total:
		return PaymentStatusFull
	default:
		return PaymentStatusAdvance
	}
}

// InitialStatus returns the lifecycle status for a new booking given its advance
func InitialStatus(advance int64) BookingStatus {
	if advance > 0 {
		return StatusConfirmed
	}
	return StatusPending
}

// RefreshPaymentStatus re-derives PaymentStatus from the paid/total pair
func (b *Booking) RefreshPaymentStatus() {
	b.PaymentStatus = DerivePaymentStatus(b.TotalAmount, b.PaidAmount)
}

// Balance returns the outstanding amount
func (b *Booking) Balance() int64 {
	return b.TotalAmount - b.PaidAmount
}

// IsActive returns true if the booking still occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status != StatusCancelled
}

// CanTransitionTo reports whether the lifecycle allows moving to next.
// pending -> confirmed, any -> cancelled; cancelled is terminal.
// Staying in the same status is always allowed.
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	if b.Status == next {
		return true
	}
	switch next {
	case StatusConfirmed:
		return b.Status == StatusPending
	case StatusCancelled:
		return true
	default:
		return false
	}
}

// Clone returns a deep copy of the booking
func (b *Booking) Clone() *Booking {
	if b == nil {
		return nil
	}
	c := *b
	if b.Notes != nil {
		notes := *b.Notes
		c.Notes = &notes
	}
	return &c
}

// BookingPatch holds the fields to merge into an existing booking; nil means "keep"
type BookingPatch struct {
	CustomerName  *string
	CustomerEmail *string
	CustomerPhone *string
	EventDate     *time.Time
	TimeSlot      *string
	EventType     *string
	GuestCount    *int
	TotalAmount   *int64
	PaymentMethod *PaymentMethod
	Status        *BookingStatus
	Notes         *string
}

// IsEmpty returns true if the patch changes nothing
func (p BookingPatch) IsEmpty() bool {
	return p.CustomerName == nil && p.CustomerEmail == nil && p.CustomerPhone == nil &&
		p.EventDate == nil && p.TimeSlot == nil && p.EventType == nil && p.GuestCount == nil &&
		p.TotalAmount == nil && p.PaymentMethod == nil && p.Status == nil && p.Notes == nil
}

// ChangesSlot returns true if the patch moves the booking to another date or slot
func (p BookingPatch) ChangesSlot() bool {
	return p.EventDate != nil || p.TimeSlot != nil
}

// Apply merges the patch into the booking, enforcing the lifecycle and paid <= total.
// The booking is left untouched when an error is returned.
func (b *Booking) Apply(p BookingPatch) error {
	next := b.Clone()

	if p.CustomerName != nil {
		next.CustomerName = *p.CustomerName
	}
	if p.CustomerEmail != nil {
		next.CustomerEmail = NormalizeEmail(*p.CustomerEmail)
	}
	if p.CustomerPhone != nil {
		next.CustomerPhone = *p.CustomerPhone
	}
	if p.EventDate != nil {
		next.EventDate = NormalizeDate(*p.EventDate)
	}
	if p.TimeSlot != nil {
		next.TimeSlot = *p.TimeSlot
	}
	if p.EventType != nil {
		next.EventType = *p.EventType
	}
	if p.GuestCount != nil {
		next.GuestCount = *p.GuestCount
	}
	if p.TotalAmount != nil {
		if *p.TotalAmount < 0 {
			return ErrNegativeAmount
		}
		if *p.TotalAmount < next.PaidAmount {
			return ErrPaidExceedsTotal
		}
		next.TotalAmount = *p.TotalAmount
	}
	if p.PaymentMethod != nil {
		next.PaymentMethod = *p.PaymentMethod
	}
	if p.Status != nil {
		if !b.CanTransitionTo(*p.Status) {
			return ErrInvalidTransition
		}
		next.Status = *p.Status
	}
	if p.Notes != nil {
		notes := *p.Notes
		next.Notes = &notes
	}

	next.RefreshPaymentStatus()
	*b = *next
	return nil
}

// BookingsFilter фильтр для получения списка бронирований
type BookingsFilter struct {
	Date             *time.Time     // Конкретная дата (опционально)
	From             *time.Time     // Начало периода (опционально)
	To               *time.Time     // Конец периода (опционально)
	Status           *BookingStatus // Фильтр по статусу (опционально)
	PaymentStatus    *PaymentStatus // Фильтр по статусу оплаты (опционально)
	CustomerEmail    *string        // Фильтр по клиенту (опционально)
	Query            string         // Поиск по имени, email или телефону клиента (опционально)
	IncludeCancelled bool           // Включать ли отменённые бронирования
}

// Matches returns true if the booking satisfies the filter
func (f BookingsFilter) Matches(b *Booking) bool {
	if !f.IncludeCancelled && b.IsCancelled() && (f.Status == nil || *f.Status != StatusCancelled) {
		return false
	}
	if f.Date != nil && !SameDate(b.EventDate, *f.Date) {
		return false
	}
	if f.From != nil && b.EventDate.Before(NormalizeDate(*f.From)) {
		return false
	}
	if f.To != nil && b.EventDate.After(NormalizeDate(*f.To)) {
		return false
	}
	if f.Status != nil && b.Status != *f.Status {
		return false
	}
	if f.PaymentStatus != nil && b.PaymentStatus != *f.PaymentStatus {
		return false
	}
	if f.CustomerEmail != nil && b.CustomerEmail != NormalizeEmail(*f.CustomerEmail) {
		return false
	}
	if q := strings.TrimSpace(f.Query); q != "" && !b.matchesQuery(q) {
		return false
	}
	return true
}

// matchesQuery ищет подстроку в имени и email без учета регистра, в телефоне как есть
func (b *Booking) matchesQuery(q string) bool {
	needle := strings.ToLower(q)
	return strings.Contains(strings.ToLower(b.CustomerName), needle) ||
		strings.Contains(strings.ToLower(b.CustomerEmail), needle) ||
		strings.Contains(b.CustomerPhone, q)
}

// NormalizeDate strips the time component, keeping the calendar date in UTC
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDate compares calendar dates
func SameDate(a, b time.Time) bool {
	ya, ma, da := a.Date()
	yb, mb, db := b.Date()
	return ya == yb && ma == mb && da == db
}

// NormalizeEmail lower-cases and trims an email so it can be used as a key
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
