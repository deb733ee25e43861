package invoice

import (
	"time"

	"github.com/m04kA/HallBookingService/internal/domain"
)

// Invoice печатное представление счета по бронированию
// Денежные поля дублируются отформатированными строками (*Text)
type Invoice struct {
	Number        string
	IssueDate     time.Time
	IssueDateText string
	Currency      string
	TaxRate       float64

	Hall   domain.Hall
	BillTo BillTo
	Event  EventDetails

	Items []LineItem

	Subtotal       int64
	SubtotalText   string
	Tax            int64
	TaxText        string
	Total          int64
	TotalText      string
	AmountPaid     int64
	AmountPaidText string
	Balance        int64
	BalanceText    string
	ShowBalance    bool // остаток показывается только если он положительный

	Payments []PaymentLine
}

// BillTo получатель счета
type BillTo struct {
	Name  string
	Email string
	Phone string
}

// EventDetails детали мероприятия
type EventDetails struct {
	BookingID  string
	Date       time.Time
	DateText   string
	TimeSlot   string
	EventType  string
	GuestCount int
	Status     domain.BookingStatus
}

// LineItem строка счета
type LineItem struct {
	Description string
	Amount      int64
	AmountText  string
}

// PaymentLine строка истории платежей
type PaymentLine struct {
	Date          time.Time
	DateText      string
	Method        domain.PaymentMethod
	TransactionID string // "-" если не указан
	Status        domain.PaymentRecordStatus
	Amount        int64
	AmountText    string
}
