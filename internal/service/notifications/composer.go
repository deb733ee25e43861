package notifications

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/m04kA/HallBookingService/internal/domain"
	"github.com/m04kA/HallBookingService/pkg/money"
)

const (
	confirmationFormat = "Dear %s, your booking at %s on %s from %s has been confirmed. Total amount: %s. Thank you!"
	reminderFormat     = "Reminder: You have a pending balance of %s for your booking on %s. Please complete the payment before the event date."

	confirmationSubject = "Booking Confirmation - %s"
	reminderSubject     = "Payment Reminder - %s"
)

// Composer собирает тексты уведомлений
type Composer struct {
	hall  domain.Hall
	money *money.Formatter
}

// NewComposer создает composer уведомлений
func NewComposer(hall domain.Hall, formatter *money.Formatter) *Composer {
	return &Composer{
		hall:  hall,
		money: formatter,
	}
}

// ConfirmationMessage короткое подтверждение для SMS
func (c *Composer) ConfirmationMessage(b *domain.Booking) string {
	return fmt.Sprintf(confirmationFormat,
		b.CustomerName,
		c.hall.Name,
		b.EventDate.Format(domain.DisplayDateFormat),
		b.TimeSlot,
		c.money.Format(b.TotalAmount),
	)
}

// ReminderMessage напоминание об остатке; ok=false если остаток не положительный
func (c *Composer) ReminderMessage(b *domain.Booking) (string, bool) {
	balance := b.Balance()
	if balance <= 0 {
		return "", false
	}
	return fmt.Sprintf(reminderFormat,
		c.money.Format(balance),
		b.EventDate.Format(domain.DisplayDateFormat),
	), true
}

// Email письмо: тема и HTML тело
type Email struct {
	Subject string
	Body    string
}

type confirmationData struct {
	HallName      string
	HallAddress   string
	HallPhone     string
	CustomerName  string
	Date          string
	TimeSlot      string
	EventType     string
	GuestCount    int
	TotalAmount   string
	AdvancePaid   string
	Balance       string
	InvoiceNumber string
	Year          int
}

type reminderData struct {
	HallName     string
	HallPhone    string
	CustomerName string
	Message      string
	Date         string
	TimeSlot     string
	Balance      string
}

// ConfirmationEmail письмо-подтверждение с деталями бронирования и номером счета
func (c *Composer) ConfirmationEmail(b *domain.Booking, invoiceNumber string) (*Email, error) {
	data := confirmationData{
		HallName:      c.hall.Name,
		HallAddress:   c.hall.Address,
		HallPhone:     c.hall.Phone,
		CustomerName:  b.CustomerName,
		Date:          b.EventDate.Format(domain.DisplayDateFormat),
		TimeSlot:      b.TimeSlot,
		EventType:     b.EventType,
		GuestCount:    b.GuestCount,
		TotalAmount:   c.money.Format(b.TotalAmount),
		AdvancePaid:   c.money.Format(b.PaidAmount),
		Balance:       c.money.Format(b.Balance()),
		InvoiceNumber: invoiceNumber,
		Year:          b.CreatedAt.Year(),
	}

	body, err := render(confirmationTemplate, data)
	if err != nil {
		return nil, err
	}
	return &Email{
		Subject: fmt.Sprintf(confirmationSubject, c.hall.Name),
		Body:    body,
	}, nil
}

// ReminderEmail письмо-напоминание об остатке
func (c *Composer) ReminderEmail(b *domain.Booking) (*Email, error) {
	message, ok := c.ReminderMessage(b)
	if !ok {
		return nil, ErrNoBalance
	}

	body, err := render(reminderTemplate, reminderData{
		HallName:     c.hall.Name,
		HallPhone:    c.hall.Phone,
		CustomerName: b.CustomerName,
		Message:      message,
		Date:         b.EventDate.Format(domain.DisplayDateFormat),
		TimeSlot:     b.TimeSlot,
		Balance:      c.money.Format(b.Balance()),
	})
	if err != nil {
		return nil, err
	}
	return &Email{
		Subject: fmt.Sprintf(reminderSubject, c.hall.Name),
		Body:    body,
	}, nil
}

func render(tmpl *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrRender, tmpl.Name(), err)
	}
	return buf.String(), nil
}
