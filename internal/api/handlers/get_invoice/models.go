package get_invoice

import (
	"github.com/m04kA/HallBookingService/internal/domain"
	"github.com/m04kA/HallBookingService/internal/service/invoice"
)

// MoneyResponse сумма вместе с отформатированным представлением
type MoneyResponse struct {
	Amount int64  `json:"amount"`
	Text   string `json:"text"` // "LKR 450,000"
}

// HallResponse реквизиты зала в шапке счета
type HallResponse struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// BillToResponse получатель счета
type BillToResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// EventResponse детали мероприятия
type EventResponse struct {
	BookingID  string `json:"bookingId"`
	Date       string `json:"date"`     // "2026-10-20"
	DateText   string `json:"dateText"` // "Oct 20, 2026"
	TimeSlot   string `json:"timeSlot"`
	EventType  string `json:"eventType"`
	GuestCount int    `json:"guestCount"`
	Status     string `json:"status"`
}

// LineItemResponse строка счета
type LineItemResponse struct {
	Description string        `json:"description"`
	Amount      MoneyResponse `json:"amount"`
}

// PaymentLineResponse строка истории платежей
type PaymentLineResponse struct {
	Date          string        `json:"date"`
	Method        string        `json:"method"`
	TransactionID string        `json:"transactionId"`
	Status        string        `json:"status"`
	Amount        MoneyResponse `json:"amount"`
}

// InvoiceResponse HTTP response model
type InvoiceResponse struct {
	Number     string                `json:"number"`
	IssueDate  string                `json:"issueDate"`
	Currency   string                `json:"currency"`
	TaxRate    float64               `json:"taxRate"`
	Hall       HallResponse          `json:"hall"`
	BillTo     BillToResponse        `json:"billTo"`
	Event      EventResponse         `json:"event"`
	Items      []LineItemResponse    `json:"items"`
	Subtotal   MoneyResponse         `json:"subtotal"`
	Tax        MoneyResponse         `json:"tax"`
	Total      MoneyResponse         `json:"total"`
	AmountPaid MoneyResponse         `json:"amountPaid"`
	Balance    *MoneyResponse        `json:"balance,omitempty"` // только при положительном остатке
	Payments   []PaymentLineResponse `json:"payments"`
}

// FromInvoice конвертирует счет в HTTP response
func FromInvoice(inv *invoice.Invoice) *InvoiceResponse {
	resp := &InvoiceResponse{
		Number:    inv.Number,
		IssueDate: inv.IssueDateText,
		Currency:  inv.Currency,
		TaxRate:   inv.TaxRate,
		Hall: HallResponse{
			Name:    inv.Hall.Name,
			Address: inv.Hall.Address,
			Phone:   inv.Hall.Phone,
			Email:   inv.Hall.Email,
		},
		BillTo: BillToResponse{
			Name:  inv.BillTo.Name,
			Email: inv.BillTo.Email,
			Phone: inv.BillTo.Phone,
		},
		Event: EventResponse{
			BookingID:  inv.Event.BookingID,
			Date:       inv.Event.Date.Format(domain.DateFormat),
			DateText:   inv.Event.DateText,
			TimeSlot:   inv.Event.TimeSlot,
			EventType:  inv.Event.EventType,
			GuestCount: inv.Event.GuestCount,
			Status:     string(inv.Event.Status),
		},
		Items:      make([]LineItemResponse, 0, len(inv.Items)),
		Subtotal:   MoneyResponse{Amount: inv.Subtotal, Text: inv.SubtotalText},
		Tax:        MoneyResponse{Amount: inv.Tax, Text: inv.TaxText},
		Total:      MoneyResponse{Amount: inv.Total, Text: inv.TotalText},
		AmountPaid: MoneyResponse{Amount: inv.AmountPaid, Text: inv.AmountPaidText},
		Payments:   make([]PaymentLineResponse, 0, len(inv.Payments)),
	}

	if inv.ShowBalance {
		resp.Balance = &MoneyResponse{Amount: inv.Balance, Text: inv.BalanceText}
	}

	for _, item := range inv.Items {
		resp.Items = append(resp.Items, LineItemResponse{
			Description: item.Description,
			Amount:      MoneyResponse{Amount: item.Amount, Text: item.AmountText},
		})
	}

	for _, p := range inv.Payments {
		resp.Payments = append(resp.Payments, PaymentLineResponse{
			Date:          p.DateText,
			Method:        string(p.Method),
			TransactionID: p.TransactionID,
			Status:        string(p.Status),
			Amount:        MoneyResponse{Amount: p.Amount, Text: p.AmountText},
		})
	}

	return resp
}
