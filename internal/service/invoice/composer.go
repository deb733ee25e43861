package invoice

import (
	"fmt"
	"time"

	"github.com/m04kA/HallBookingService/internal/domain"
	"github.com/m04kA/HallBookingService/pkg/money"
)

const (
	hallRentalPrefix     = "Hall Rental - "
	specialRequirements  = "Special Requirements: "
	missingTransactionID = "-"
)

// Composer собирает счет из бронирования и его платежей
// Итоговая сумма бронирования включает налог: subtotal = round(total / (1 + rate)), tax = total - subtotal
type Composer struct {
	hall    domain.Hall
	taxRate float64
	money   *money.Formatter
	numbers NumberStore
}

// NewComposer создает composer счетов
func NewComposer(hall domain.Hall, taxRate float64, formatter *money.Formatter, numbers NumberStore) *Composer {
	return &Composer{
		hall:    hall,
		taxRate: taxRate,
		money:   formatter,
		numbers: numbers,
	}
}

// Compose строит счет
// Оплаченная сумма учитывает только успешные платежи; история платежей выводится в переданном порядке
func (c *Composer) Compose(booking *domain.Booking, payments []*domain.Payment, issuedAt time.Time) (*Invoice, error) {
	if booking == nil {
		return nil, fmt.Errorf("%w: booking is required", ErrInvalidInput)
	}

	subtotal, tax := money.BackOutTax(booking.TotalAmount, c.taxRate)
	paid := domain.SumSuccessful(payments)
	balance := booking.TotalAmount - paid

	inv := &Invoice{
		Number:        c.numbers.Assign(booking.ID, issuedAt),
		IssueDate:     issuedAt,
		IssueDateText: issuedAt.Format(domain.DisplayDateFormat),
		Currency:      c.money.Code(),
		TaxRate:       c.taxRate,
		Hall:          c.hall,
		BillTo: BillTo{
			Name:  booking.CustomerName,
			Email: booking.CustomerEmail,
			Phone: booking.CustomerPhone,
		},
		Event: EventDetails{
			BookingID:  booking.ID,
			Date:       booking.EventDate,
			DateText:   booking.EventDate.Format(domain.DisplayDateFormat),
			TimeSlot:   booking.TimeSlot,
			EventType:  booking.EventType,
			GuestCount: booking.GuestCount,
			Status:     booking.Status,
		},
		Subtotal:       subtotal,
		SubtotalText:   c.money.Format(subtotal),
		Tax:            tax,
		TaxText:        c.money.Format(tax),
		Total:          booking.TotalAmount,
		TotalText:      c.money.Format(booking.TotalAmount),
		AmountPaid:     paid,
		AmountPaidText: c.money.Format(paid),
		Balance:        balance,
		BalanceText:    c.money.Format(balance),
		ShowBalance:    balance > 0,
	}

	inv.Items = append(inv.Items, LineItem{
		Description: hallRentalPrefix + booking.TimeSlot,
		Amount:      subtotal,
		AmountText:  c.money.Format(subtotal),
	})
	if booking.Notes != nil && *booking.Notes != "" {
		inv.Items = append(inv.Items, LineItem{
			Description: specialRequirements + *booking.Notes,
			Amount:      0,
			AmountText:  c.money.Format(0),
		})
	}

	inv.Payments = make([]PaymentLine, 0, len(payments))
	for _, p := range payments {
		txID := missingTransactionID
		if p.TransactionID != nil && *p.TransactionID != "" {
			txID = *p.TransactionID
		}
		inv.Payments = append(inv.Payments, PaymentLine{
			Date:          p.PaidAt,
			DateText:      p.PaidAt.Format(domain.DisplayDateFormat),
			Method:        p.Method,
			TransactionID: txID,
			Status:        p.Status,
			Amount:        p.Amount,
			AmountText:    c.money.Format(p.Amount),
		})
	}

	return inv, nil
}
