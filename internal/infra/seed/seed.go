package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/HallBookingService/internal/domain"
	"github.com/m04kA/HallBookingService/internal/infra/storage/registry"
)

// ErrInvalidSeed возвращается при некорректном файле начальных данных
var ErrInvalidSeed = errors.New("seed: invalid seed data")

// openingPaymentSuffix суффикс ID синтетического платежа, покрывающего объявленный аванс
const openingPaymentSuffix = "-opening"

// File содержимое seed.toml
// Даты задаются смещением в днях относительно дня запуска
type File struct {
	Customers []Customer `toml:"customers"`
	Bookings  []Booking  `toml:"bookings"`
	Payments  []Payment  `toml:"payments"`
}

// Customer начальная запись клиента
type Customer struct {
	ID             string `toml:"id"`
	Name           string `toml:"name"`
	Email          string `toml:"email"`
	Phone          string `toml:"phone"`
	Address        string `toml:"address"`
	CreatedDaysAgo int    `toml:"created_days_ago"`
}

// Booking начальная запись бронирования
// Advance - заявленная оплаченная сумма; недостающая часть покрывается синтетическим платежом
type Booking struct {
	ID             string `toml:"id"`
	CustomerName   string `toml:"customer_name"`
	CustomerEmail  string `toml:"customer_email"`
	CustomerPhone  string `toml:"customer_phone"`
	DayOffset      int    `toml:"day_offset"`
	TimeSlot       string `toml:"time_slot"`
	EventType      string `toml:"event_type"`
	GuestCount     int    `toml:"guest_count"`
	TotalAmount    int64  `toml:"total_amount"`
	Advance        int64  `toml:"advance"`
	PaymentMethod  string `toml:"payment_method"`
	Status         string `toml:"status"`
	Notes          string `toml:"notes"`
	CreatedDaysAgo int    `toml:"created_days_ago"`
}

// Payment начальная запись платежа
type Payment struct {
	ID            string `toml:"id"`
	BookingID     string `toml:"booking_id"`
	Amount        int64  `toml:"amount"`
	Type          string `toml:"type"`
	Method        string `toml:"method"`
	Status        string `toml:"status"`
	TransactionID string `toml:"transaction_id"`
	PaidDaysAgo   int    `toml:"paid_days_ago"`
}

// Result количество загруженных записей
type Result struct {
	Customers int
	Bookings  int
	Payments  int
}

// Decode читает seed.toml
func Decode(path string) (*File, error) {
	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("%w: failed to decode %s: %v", ErrInvalidSeed, path, err)
	}
	return &f, nil
}

// Loader загружает начальные данные в реестр
type Loader struct {
	store   Store
	catalog SlotCatalog
	logger  Logger
}

// NewLoader создает загрузчик
func NewLoader(store Store, catalog SlotCatalog, logger Logger) *Loader {
	return &Loader{
		store:   store,
		catalog: catalog,
		logger:  logger,
	}
}

// Apply добавляет данные в реестр относительно дня today
// 1. Клиенты
// 2. Бронирования с нулевой оплатой (оплата выводится из платежей)
// 3. Платежи
// 4. Синтетические платежи для аванса, не подтверждённого платежами
// 5. Клиенты для бронирований без карточки клиента
func (l *Loader) Apply(ctx context.Context, f *File, today time.Time) (*Result, error) {
	today = domain.NormalizeDate(today)
	result := &Result{}

	// 1. Клиенты
	for _, c := range f.Customers {
		customer := &domain.Customer{
			ID:        c.ID,
			Name:      c.Name,
			Email:     c.Email,
			Phone:     c.Phone,
			CreatedAt: daysAgo(today, c.CreatedDaysAgo),
		}
		if c.Address != "" {
			addr := c.Address
			customer.Address = &addr
		}
		if _, err := l.store.AddCustomer(ctx, customer); err != nil {
			return nil, fmt.Errorf("%w: customer %s: %v", ErrInvalidSeed, c.ID, err)
		}
		result.Customers++
	}

	// 2. Бронирования
	advances := make(map[string]int64, len(f.Bookings))
	loaded := make(map[string]*domain.Booking, len(f.Bookings))
	for _, b := range f.Bookings {
		if _, ok := l.catalog.FindByLabel(b.TimeSlot); !ok {
			l.logger.Warn("Seed: booking %s skipped, unknown time slot %q", b.ID, b.TimeSlot)
			continue
		}

		booking, err := toDomainBooking(b, today)
		if err != nil {
			return nil, err
		}

		created, err := l.store.AddBooking(ctx, booking)
		if err != nil {
			return nil, fmt.Errorf("%w: booking %s: %v", ErrInvalidSeed, b.ID, err)
		}
		advances[created.ID] = b.Advance
		loaded[created.ID] = created
		result.Bookings++
	}

	// 3. Платежи
	paid := make(map[string]int64)
	for _, p := range f.Payments {
		if _, ok := loaded[p.BookingID]; !ok {
			l.logger.Warn("Seed: payment %s skipped, booking %s not loaded", p.ID, p.BookingID)
			continue
		}

		payment := &domain.Payment{
			ID:        p.ID,
			BookingID: p.BookingID,
			Amount:    p.Amount,
			Type:      domain.PaymentType(p.Type),
			Method:    domain.PaymentMethod(p.Method),
			Status:    domain.PaymentRecordStatus(p.Status),
			PaidAt:    daysAgo(today, p.PaidDaysAgo),
		}
		if p.TransactionID != "" {
			txID := p.TransactionID
			payment.TransactionID = &txID
		}

		if _, err := l.store.AddPayment(ctx, payment); err != nil {
			return nil, fmt.Errorf("%w: payment %s: %v", ErrInvalidSeed, p.ID, err)
		}
		if payment.IsSuccessful() {
			paid[p.BookingID] += p.Amount
		}
		result.Payments++
	}

	// 4. Аванс без подтверждающих платежей
	for _, b := range f.Bookings {
		booking, ok := loaded[b.ID]
		if !ok {
			continue
		}
		missing := advances[b.ID] - paid[b.ID]
		if missing <= 0 {
			continue
		}

		opening := &domain.Payment{
			ID:        b.ID + openingPaymentSuffix,
			BookingID: b.ID,
			Amount:    missing,
			Type:      domain.PaymentTypeAdvance,
			Method:    booking.PaymentMethod,
			Status:    domain.PaymentSuccess,
			PaidAt:    booking.CreatedAt,
		}
		if _, err := l.store.AddPayment(ctx, opening); err != nil {
			return nil, fmt.Errorf("%w: opening payment for %s: %v", ErrInvalidSeed, b.ID, err)
		}
		result.Payments++
	}

	// 5. Клиенты из бронирований
	for _, b := range f.Bookings {
		booking, ok := loaded[b.ID]
		if !ok {
			continue
		}
		if _, err := l.store.GetCustomer(ctx, booking.CustomerEmail); err == nil {
			continue
		} else if !errors.Is(err, registry.ErrCustomerNotFound) {
			return nil, fmt.Errorf("%w: customer lookup for %s: %v", ErrInvalidSeed, b.ID, err)
		}

		customer := &domain.Customer{
			ID:        "cust-" + b.ID,
			Name:      booking.CustomerName,
			Email:     booking.CustomerEmail,
			Phone:     booking.CustomerPhone,
			CreatedAt: booking.CreatedAt,
		}
		if _, err := l.store.AddCustomer(ctx, customer); err != nil {
			return nil, fmt.Errorf("%w: customer for booking %s: %v", ErrInvalidSeed, b.ID, err)
		}
		result.Customers++
	}

	l.logger.Info("Seed: loaded customers=%d, bookings=%d, payments=%d",
		result.Customers, result.Bookings, result.Payments)
	return result, nil
}

func toDomainBooking(b Booking, today time.Time) (*domain.Booking, error) {
	if b.Advance < 0 || b.Advance > b.TotalAmount {
		return nil, fmt.Errorf("%w: booking %s advance=%d total=%d", ErrInvalidSeed, b.ID, b.Advance, b.TotalAmount)
	}

	status := domain.BookingStatus(b.Status)
	if status == "" {
		status = domain.InitialStatus(b.Advance)
	}

	created := daysAgo(today, b.CreatedDaysAgo)
	booking := &domain.Booking{
		ID:            b.ID,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		EventDate:     today.AddDate(0, 0, b.DayOffset),
		TimeSlot:      b.TimeSlot,
		EventType:     b.EventType,
		GuestCount:    b.GuestCount,
		TotalAmount:   b.TotalAmount,
		PaymentMethod: domain.PaymentMethod(b.PaymentMethod),
		Status:        status,
		CreatedAt:     created,
		UpdatedAt:     created,
	}
	if b.Notes != "" {
		notes := b.Notes
		booking.Notes = &notes
	}
	return booking, nil
}

func daysAgo(today time.Time, days int) time.Time {
	return today.AddDate(0, 0, -days)
}
