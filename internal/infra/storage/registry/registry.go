package registry

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/m04kA/HallBookingService/internal/domain"
)

// Registry in-memory хранилище бронирований, платежей и клиентов
// Владеет всеми тремя коллекциями на время жизни процесса.
// Наружу отдаются только копии, поэтому изменить данные можно только через методы реестра.
type Registry struct {
	mu    sync.RWMutex
	txMu  sync.Mutex // сериализует составные операции (проверка + запись)
	clock Clock

	bookings     map[string]*domain.Booking
	bookingOrder []string            // порядок вставки
	byDate       map[string][]string // "2006-01-02" -> booking IDs в порядке вставки

	payments          []*domain.Payment
	paymentIDs        map[string]struct{}
	paymentsByBooking map[string][]*domain.Payment

	customers   map[string]*domain.Customer // email -> customer
	customerIDs map[string]string           // id -> email
}

// New создает пустой реестр
func New(clock Clock) *Registry {
	if clock == nil {
		clock = SystemClock{}
	}

	return &Registry{
		clock:             clock,
		bookings:          make(map[string]*domain.Booking),
		byDate:            make(map[string][]string),
		paymentIDs:        make(map[string]struct{}),
		paymentsByBooking: make(map[string][]*domain.Payment),
		customers:         make(map[string]*domain.Customer),
		customerIDs:       make(map[string]string),
	}
}

// ============================================================
// Bookings
// ============================================================

// AddBooking добавляет новое бронирование
// Повторное добавление с тем же ID отклоняется, существующая запись не изменяется.
// Проверка занятости слота - ответственность вызывающего кода.
func (r *Registry) AddBooking(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if booking == nil || strings.TrimSpace(booking.ID) == "" {
		return nil, fmt.Errorf("%w: AddBooking - id is required", ErrInvalidBooking)
	}
	if booking.TotalAmount < 0 || booking.PaidAmount < 0 {
		return nil, fmt.Errorf("%w: AddBooking - %v", ErrInvalidBooking, domain.ErrNegativeAmount)
	}
	if booking.PaidAmount > booking.TotalAmount {
		return nil, fmt.Errorf("%w: AddBooking - %v", ErrInvalidBooking, domain.ErrPaidExceedsTotal)
	}
	if !domain.IsKnownBookingStatus(booking.Status) {
		return nil, fmt.Errorf("%w: AddBooking - unknown status %q", ErrInvalidBooking, booking.Status)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.bookings[booking.ID]; exists {
		return nil, fmt.Errorf("%w: id=%s", ErrBookingAlreadyExists, booking.ID)
	}

	stored := booking.Clone()
	stored.EventDate = domain.NormalizeDate(stored.EventDate)
	stored.CustomerEmail = domain.NormalizeEmail(stored.CustomerEmail)
	stored.RefreshPaymentStatus()

	now := r.clock.Now()
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = now
	}
	if stored.UpdatedAt.IsZero() {
		stored.UpdatedAt = stored.CreatedAt
	}

	r.bookings[stored.ID] = stored
	r.bookingOrder = append(r.bookingOrder, stored.ID)
	r.indexDate(stored.ID, stored.EventDate)

	return stored.Clone(), nil
}

// UpdateBooking объединяет переданные поля с существующим бронированием
// и проставляет новое время обновления
func (r *Registry) UpdateBooking(ctx context.Context, id string, patch domain.BookingPatch) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.bookings[id]
	if !ok {
		return nil, fmt.Errorf("%w: id=%s", ErrBookingNotFound, id)
	}

	oldDate := booking.EventDate
	if err := booking.Apply(patch); err != nil {
		return nil, err
	}
	booking.UpdatedAt = r.clock.Now()

	if !domain.SameDate(oldDate, booking.EventDate) {
		r.unindexDate(id, oldDate)
		r.indexDate(id, booking.EventDate)
	}

	return booking.Clone(), nil
}

// DeleteBooking удаляет бронирование; платежи по нему сохраняются
func (r *Registry) DeleteBooking(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.bookings[id]
	if !ok {
		return fmt.Errorf("%w: id=%s", ErrBookingNotFound, id)
	}

	r.unindexDate(id, booking.EventDate)
	delete(r.bookings, id)
	for i, bookingID := range r.bookingOrder {
		if bookingID == id {
			r.bookingOrder = append(r.bookingOrder[:i], r.bookingOrder[i+1:]...)
			break
		}
	}

	return nil
}

// GetBooking получает бронирование по ID
func (r *Registry) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	booking, ok := r.bookings[id]
	if !ok {
		return nil, fmt.Errorf("%w: id=%s", ErrBookingNotFound, id)
	}
	return booking.Clone(), nil
}

// GetBookingsByDate получает все бронирования на дату (включая отменённые) в порядке вставки
func (r *Registry) GetBookingsByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.bookingsOnDate(date), nil
}

// IsSlotAvailable проверяет, свободен ли слот на дату, используя индекс по датам
func (r *Registry) IsSlotAvailable(ctx context.Context, date time.Time, slotLabel string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return domain.IsSlotAvailable(date, slotLabel, r.bookingsOnDate(date)), nil
}

// ListBookings получает бронирования по фильтру
// Результат упорядочен по дате мероприятия, затем по слоту
func (r *Registry) ListBookings(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var candidates []string
	if filter.Date != nil {
		candidates = r.idsOnDate(*filter.Date)
	} else {
		candidates = r.bookingOrder
	}

	result := make([]*domain.Booking, 0, len(candidates))
	for _, id := range candidates {
		booking := r.bookings[id]
		if filter.Matches(booking) {
			result = append(result, booking.Clone())
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		if !result[i].EventDate.Equal(result[j].EventDate) {
			return result[i].EventDate.Before(result[j].EventDate)
		}
		return result[i].TimeSlot < result[j].TimeSlot
	})

	return result, nil
}

// ============================================================
// Payments
// ============================================================

// AddPayment добавляет платёж и пересчитывает оплаченную сумму бронирования
// Оплаченная сумма = сумма всех успешных платежей по бронированию, включая новый.
// Статус оплаты выводится заново из пары (оплачено, итого).
func (r *Registry) AddPayment(ctx context.Context, payment *domain.Payment) (*domain.Booking, error) {
	if payment == nil || strings.TrimSpace(payment.ID) == "" {
		return nil, fmt.Errorf("%w: AddPayment - id is required", ErrInvalidPayment)
	}
	if payment.Amount <= 0 {
		return nil, fmt.Errorf("%w: AddPayment - amount must be positive", ErrInvalidPayment)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.bookings[payment.BookingID]
	if !ok {
		return nil, fmt.Errorf("%w: id=%s", ErrBookingNotFound, payment.BookingID)
	}
	if _, exists := r.paymentIDs[payment.ID]; exists {
		return nil, fmt.Errorf("%w: id=%s", ErrPaymentAlreadyExists, payment.ID)
	}

	stored := payment.Clone()
	if stored.PaidAt.IsZero() {
		stored.PaidAt = r.clock.Now()
	}

	paid := domain.SumSuccessful(r.paymentsByBooking[booking.ID])
	if stored.IsSuccessful() {
		paid += stored.Amount
	}
	if paid > booking.TotalAmount {
		return nil, fmt.Errorf("%w: booking=%s paid=%d total=%d",
			domain.ErrPaidExceedsTotal, booking.ID, paid, booking.TotalAmount)
	}

	r.payments = append(r.payments, stored)
	r.paymentIDs[stored.ID] = struct{}{}
	r.paymentsByBooking[booking.ID] = append(r.paymentsByBooking[booking.ID], stored)

	booking.PaidAmount = paid
	booking.RefreshPaymentStatus()
	booking.UpdatedAt = r.clock.Now()

	return booking.Clone(), nil
}

// GetPaymentsByBooking получает платежи бронирования в порядке добавления
func (r *Registry) GetPaymentsByBooking(ctx context.Context, bookingID string) ([]*domain.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	payments := r.paymentsByBooking[bookingID]
	result := make([]*domain.Payment, len(payments))
	for i, p := range payments {
		result[i] = p.Clone()
	}
	return result, nil
}

// ListPayments получает все платежи в порядке добавления
func (r *Registry) ListPayments(ctx context.Context) ([]*domain.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Payment, len(r.payments))
	for i, p := range r.payments {
		result[i] = p.Clone()
	}
	return result, nil
}

// ============================================================
// Customers
// ============================================================

// AddCustomer добавляет клиента; email является бизнес-ключом
func (r *Registry) AddCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if customer == nil || strings.TrimSpace(customer.ID) == "" {
		return nil, fmt.Errorf("%w: AddCustomer - id is required", ErrInvalidCustomer)
	}
	email := domain.NormalizeEmail(customer.Email)
	if email == "" {
		return nil, fmt.Errorf("%w: AddCustomer - email is required", ErrInvalidCustomer)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.customers[email]; exists {
		return nil, fmt.Errorf("%w: email=%s", ErrCustomerAlreadyExists, email)
	}
	if _, exists := r.customerIDs[customer.ID]; exists {
		return nil, fmt.Errorf("%w: id=%s", ErrCustomerAlreadyExists, customer.ID)
	}

	stored := customer.Clone()
	stored.Email = email
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = r.clock.Now()
	}

	r.customers[email] = stored
	r.customerIDs[stored.ID] = email

	return stored.Clone(), nil
}

// UpdateCustomer объединяет переданные поля с данными клиента
// Смена email переключает ключ и переносит на него бронирования клиента; занятый email отклоняется
func (r *Registry) UpdateCustomer(ctx context.Context, id string, patch domain.CustomerPatch) (*domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	email, ok := r.customerIDs[id]
	if !ok {
		return nil, fmt.Errorf("%w: id=%s", ErrCustomerNotFound, id)
	}

	updated := r.customers[email].Clone()
	updated.Apply(patch)
	if updated.Email == "" {
		return nil, fmt.Errorf("%w: UpdateCustomer - email is required", ErrInvalidCustomer)
	}

	if updated.Email != email {
		if _, taken := r.customers[updated.Email]; taken {
			return nil, fmt.Errorf("%w: email=%s", ErrCustomerAlreadyExists, updated.Email)
		}
		delete(r.customers, email)
		r.customerIDs[id] = updated.Email

		// бронирования клиента переходят на новый email
		now := r.clock.Now()
		for _, b := range r.bookings {
			if b.CustomerEmail == email {
				b.CustomerEmail = updated.Email
				b.UpdatedAt = now
			}
		}
	}
	r.customers[updated.Email] = updated

	return updated.Clone(), nil
}

// GetCustomer получает клиента по email
func (r *Registry) GetCustomer(ctx context.Context, email string) (*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customer, ok := r.customers[domain.NormalizeEmail(email)]
	if !ok {
		return nil, fmt.Errorf("%w: email=%s", ErrCustomerNotFound, email)
	}
	return customer.Clone(), nil
}

// GetCustomerByID получает клиента по ID
func (r *Registry) GetCustomerByID(ctx context.Context, id string) (*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	email, ok := r.customerIDs[id]
	if !ok {
		return nil, fmt.Errorf("%w: id=%s", ErrCustomerNotFound, id)
	}
	return r.customers[email].Clone(), nil
}

// ListCustomers получает всех клиентов, упорядоченных по имени
func (r *Registry) ListCustomers(ctx context.Context) ([]*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		result = append(result, c.Clone())
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Name != result[j].Name {
			return result[i].Name < result[j].Name
		}
		return result[i].Email < result[j].Email
	})
	return result, nil
}

// CustomerSummary вычисляет представление клиента по текущим бронированиям
// Список бронирований и сумма трат не хранятся, а считаются из реестра
func (r *Registry) CustomerSummary(ctx context.Context, email string) (*domain.CustomerSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	key := domain.NormalizeEmail(email)
	customer, ok := r.customers[key]
	if !ok {
		return nil, fmt.Errorf("%w: email=%s", ErrCustomerNotFound, email)
	}

	bookings := make([]*domain.Booking, 0)
	for _, id := range r.bookingOrder {
		if b := r.bookings[id]; b.CustomerEmail == key {
			bookings = append(bookings, b.Clone())
		}
	}
	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].EventDate.After(bookings[j].EventDate)
	})

	return domain.SummarizeCustomer(customer.Clone(), bookings, r.clock.Now()), nil
}

// ============================================================
// Stats
// ============================================================

// Counts количество записей в коллекциях реестра
type Counts struct {
	Bookings  int
	Payments  int
	Customers int
}

// Counts возвращает размеры коллекций
func (r *Registry) Counts() Counts {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return Counts{
		Bookings:  len(r.bookings),
		Payments:  len(r.payments),
		Customers: len(r.customers),
	}
}

// Вспомогательные методы (вызываются под блокировкой)

func dateKey(date time.Time) string {
	return date.Format(domain.DateFormat)
}

func (r *Registry) indexDate(id string, date time.Time) {
	key := dateKey(date)
	r.byDate[key] = append(r.byDate[key], id)
}

func (r *Registry) unindexDate(id string, date time.Time) {
	key := dateKey(date)
	ids := r.byDate[key]
	for i, bookingID := range ids {
		if bookingID == id {
			ids = append(ids[:i:i], ids[i+1:]...)
			break
		}
	}
	if len(ids) == 0 {
		delete(r.byDate, key)
		return
	}
	r.byDate[key] = ids
}

// idsOnDate возвращает ID бронирований на дату
func (r *Registry) idsOnDate(date time.Time) []string {
	ids := r.byDate[dateKey(domain.NormalizeDate(date))]
	result := make([]string, len(ids))
	copy(result, ids)
	return result
}

func (r *Registry) bookingsOnDate(date time.Time) []*domain.Booking {
	ids := r.idsOnDate(date)
	result := make([]*domain.Booking, 0, len(ids))
	for _, id := range ids {
		result = append(result, r.bookings[id].Clone())
	}
	return result
}
