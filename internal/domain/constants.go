package domain

// Default schedule values
const (
	DefaultStartHour       = 9
	DefaultEndHour         = 22
	DefaultBlockHours      = 4
	DefaultStandardRate    = 1000
	DefaultEveningRate     = 1500
	DefaultEveningFromHour = 18
	DefaultTaxRate         = 0.10
	PerGuestRate           = 5 // надбавка за гостя к цене слота
)

// Business validation constants
const (
	MinPhoneDigits  = 10
	MaxNotesLength  = 500
	MaxNameLength   = 100
	MaxGuestCount   = 10000
	MinCustomerName = 2
)

// Format constants
const (
	TimeFormat        = "15:04"        // HH:MM
	DateFormat        = "2006-01-02"   // YYYY-MM-DD
	DisplayDateFormat = "Jan 02, 2006" // дата в счетах и уведомлениях
)

// EventTypes known event types offered by the hall
var EventTypes = []string{
	"Wedding Reception",
	"Birthday Party",
	"Anniversary",
	"Corporate Event",
	"Baby Shower",
	"Engagement Party",
	"Graduation Party",
	"Cultural Ceremony",
	"Get-Together",
	"Other",
}

// IsKnownEventType returns true if eventType is one of EventTypes
func IsKnownEventType(eventType string) bool {
	for _, t := range EventTypes {
		if t == eventType {
			return true
		}
	}
	return false
}

// PaymentMethods список допустимых способов оплаты
var PaymentMethods = []PaymentMethod{
	MethodCash,
	MethodCard,
	MethodBankTransfer,
}

// BookingStatuses список всех статусов жизненного цикла
var BookingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
}

// IsKnownBookingStatus returns true if status is one of BookingStatuses
func IsKnownBookingStatus(status BookingStatus) bool {
	for _, s := range BookingStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// PaymentStatuses список производных статусов оплаты
var PaymentStatuses = []PaymentStatus{
	PaymentStatusPending,
	PaymentStatusAdvance,
	PaymentStatusFull,
}
