package invoice

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HallBookingService/internal/domain"
	"github.com/m04kA/HallBookingService/internal/infra/storage/registry"
	"github.com/m04kA/HallBookingService/pkg/logger"
	"github.com/m04kA/HallBookingService/pkg/money"
	"github.com/m04kA/HallBookingService/pkg/ptr"
)

type mockTimeProvider struct {
	now time.Time
}

func (m *mockTimeProvider) Now() time.Time {
	return m.now
}

var (
	issuedAt = time.Date(2026, 10, 15, 11, 30, 0, 0, time.UTC)
	hall     = domain.Hall{Name: "Royal Grand Banquet Hall", Capacity: 350}
)

func newComposer() *Composer {
	return NewComposer(hall, domain.DefaultTaxRate, money.MustFormatter(money.DefaultCurrency), NewMemoryNumberStore())
}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:            "book-001",
		CustomerName:  "Kasun Perera",
		CustomerEmail: "kasun.perera@example.com",
		CustomerPhone: "+94 71 123 4567",
		EventDate:     time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC),
		TimeSlot:      "09:00 - 13:00",
		EventType:     "Wedding Reception",
		GuestCount:    200,
		TotalAmount:   450000,
		PaidAmount:    150000,
		PaymentStatus: domain.PaymentStatusAdvance,
		PaymentMethod: domain.MethodCard,
		Status:        domain.StatusConfirmed,
		Notes:         ptr.Ptr("Poruwa setup and traditional dancing"),
	}
}

func TestComposer_Compose(t *testing.T) {
	payments := []*domain.Payment{
		{ID: "pay-001", BookingID: "book-001", Amount: 150000, Method: domain.MethodCard,
			Status: domain.PaymentSuccess, TransactionID: ptr.Ptr("TRX-SL-001"), PaidAt: issuedAt.AddDate(0, 0, -5)},
		{ID: "pay-002", BookingID: "book-001", Amount: 40000, Method: domain.MethodCash,
			Status: domain.PaymentFailed, PaidAt: issuedAt.AddDate(0, 0, -1)},
	}

	inv, err := newComposer().Compose(testBooking(), payments, issuedAt)
	require.NoError(t, err)

	assert.Equal(t, "INV-202610-0001", inv.Number)
	assert.Equal(t, "Oct 15, 2026", inv.IssueDateText)
	assert.Equal(t, "Oct 17, 2026", inv.Event.DateText)
	assert.Equal(t, "LKR", inv.Currency)
	assert.Equal(t, "Royal Grand Banquet Hall", inv.Hall.Name)
	assert.Equal(t, "Kasun Perera", inv.BillTo.Name)

	assert.Equal(t, int64(409091), inv.Subtotal)
	assert.Equal(t, int64(40909), inv.Tax)
	assert.Equal(t, int64(450000), inv.Total)
	assert.Equal(t, inv.Total, inv.Subtotal+inv.Tax)
	assert.Equal(t, "LKR 450,000", inv.TotalText)

	assert.Equal(t, int64(150000), inv.AmountPaid)
	assert.Equal(t, int64(300000), inv.Balance)
	assert.Equal(t, "LKR 300,000", inv.BalanceText)
	assert.True(t, inv.ShowBalance)

	require.Len(t, inv.Items, 2)
	assert.Equal(t, "Hall Rental - 09:00 - 13:00", inv.Items[0].Description)
	assert.Equal(t, int64(409091), inv.Items[0].Amount)
	assert.Equal(t, "Special Requirements: Poruwa setup and traditional dancing", inv.Items[1].Description)
	assert.Zero(t, inv.Items[1].Amount)

	require.Len(t, inv.Payments, 2)
	assert.Equal(t, "TRX-SL-001", inv.Payments[0].TransactionID)
	assert.Equal(t, "-", inv.Payments[1].TransactionID)
	assert.Equal(t, domain.PaymentFailed, inv.Payments[1].Status)
}

func TestComposer_FullyPaidWithoutNotes(t *testing.T) {
	b := testBooking()
	b.Notes = nil
	b.TotalAmount = 110000

	payments := []*domain.Payment{
		{ID: "pay-1", Amount: 110000, Status: domain.PaymentSuccess, PaidAt: issuedAt},
	}

	inv, err := newComposer().Compose(b, payments, issuedAt)
	require.NoError(t, err)

	assert.Equal(t, int64(100000), inv.Subtotal)
	assert.Equal(t, int64(10000), inv.Tax)
	assert.Zero(t, inv.Balance)
	assert.False(t, inv.ShowBalance)
	assert.Len(t, inv.Items, 1)
}

func TestComposer_NilBooking(t *testing.T) {
	_, err := newComposer().Compose(nil, nil, issuedAt)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestComposer_NumberIsStablePerBooking(t *testing.T) {
	c := newComposer()

	first, err := c.Compose(testBooking(), nil, issuedAt)
	require.NoError(t, err)
	again, err := c.Compose(testBooking(), nil, issuedAt.AddDate(0, 1, 0))
	require.NoError(t, err)
	assert.Equal(t, first.Number, again.Number)

	other := testBooking()
	other.ID = "book-002"
	second, err := c.Compose(other, nil, issuedAt)
	require.NoError(t, err)
	assert.Equal(t, "INV-202610-0002", second.Number)
}

func TestMemoryNumberStore_SequencePerMonth(t *testing.T) {
	s := NewMemoryNumberStore()

	assert.Equal(t, "INV-202610-0001", s.Assign("a", issuedAt))
	assert.Equal(t, "INV-202611-0001", s.Assign("b", issuedAt.AddDate(0, 1, 0)))
	assert.Equal(t, "INV-202610-0002", s.Assign("c", issuedAt))
	assert.Equal(t, "INV-202610-0001", s.Assign("a", issuedAt.AddDate(0, 2, 0)))
}

func newTestService(t *testing.T) (*Service, *registry.Registry) {
	t.Helper()

	reg := registry.New(&mockTimeProvider{now: issuedAt})
	svc := NewService(reg, newComposer(), logger.NewWithWriter(io.Discard, logger.LevelError))
	svc.timeProvider = &mockTimeProvider{now: issuedAt}
	return svc, reg
}

func TestService_GetInvoice(t *testing.T) {
	ctx := context.Background()
	svc, reg := newTestService(t)

	b := testBooking()
	b.PaidAmount = 0
	_, err := reg.AddBooking(ctx, b)
	require.NoError(t, err)
	_, err = reg.AddPayment(ctx, &domain.Payment{
		ID: "pay-001", BookingID: "book-001", Amount: 150000,
		Type: domain.PaymentTypeAdvance, Method: domain.MethodCard, Status: domain.PaymentSuccess,
	})
	require.NoError(t, err)

	inv, err := svc.GetInvoice(ctx, "book-001")
	require.NoError(t, err)
	assert.Equal(t, int64(150000), inv.AmountPaid)
	assert.Equal(t, int64(300000), inv.Balance)
	require.Len(t, inv.Payments, 1)

	again, err := svc.GetInvoice(ctx, "book-001")
	require.NoError(t, err)
	assert.Equal(t, inv.Number, again.Number)
	assert.Equal(t, inv.Number, svc.InvoiceNumber("book-001"))
}

func TestService_GetInvoiceNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetInvoice(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
