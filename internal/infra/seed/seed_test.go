package seed

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HallBookingService/internal/domain"
	"github.com/m04kA/HallBookingService/internal/infra/storage/registry"
	"github.com/m04kA/HallBookingService/internal/service/catalog"
	"github.com/m04kA/HallBookingService/pkg/logger"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

var today = time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)

const seedFile = `
[[customers]]
id = "cust-001"
name = "Kasun Perera"
email = "kasun.perera@example.com"
phone = "+94 71 123 4567"
address = "Nugegoda"
created_days_ago = 90

[[bookings]]
id = "book-001"
customer_name = "Kasun Perera"
customer_email = "kasun.perera@example.com"
customer_phone = "+94 71 123 4567"
day_offset = 2
time_slot = "09:00 - 13:00"
event_type = "Wedding Reception"
guest_count = 200
total_amount = 450000
advance = 150000
payment_method = "card"
status = "confirmed"
created_days_ago = 5

[[bookings]]
id = "book-005"
customer_name = "Ruwan Senanayake"
customer_email = "ruwan.s@example.com"
customer_phone = "+94 71 888 2233"
day_offset = -7
time_slot = "17:00 - 21:00"
event_type = "Wedding Reception"
guest_count = 250
total_amount = 500000
advance = 500000
payment_method = "card"
status = "confirmed"
created_days_ago = 30

[[bookings]]
id = "book-bad"
customer_name = "Nobody"
customer_email = "nobody@example.com"
customer_phone = "+94 70 000 0000"
day_offset = 3
time_slot = "18:00 - 22:00"
event_type = "Other"
guest_count = 10
total_amount = 1000

[[payments]]
id = "pay-001"
booking_id = "book-001"
amount = 100000
type = "advance"
method = "card"
status = "success"
transaction_id = "TRX-SL-001"
paid_days_ago = 5

[[payments]]
id = "pay-bad"
booking_id = "book-bad"
amount = 10
type = "advance"
method = "cash"
status = "success"
`

func newLoader(t *testing.T) (*Loader, *registry.Registry) {
	t.Helper()

	cat, err := catalog.New(domain.SlotSchedule{
		StartHour:       domain.DefaultStartHour,
		EndHour:         domain.DefaultEndHour,
		BlockHours:      domain.DefaultBlockHours,
		StandardRate:    domain.DefaultStandardRate,
		EveningRate:     domain.DefaultEveningRate,
		EveningFromHour: domain.DefaultEveningFromHour,
	})
	require.NoError(t, err)

	reg := registry.New(fixedClock{now: today.Add(10 * time.Hour)})
	log := logger.NewWithWriter(io.Discard, logger.LevelDebug)
	return NewLoader(reg, cat, log), reg
}

func decodeSample(t *testing.T) *File {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.toml")
	require.NoError(t, os.WriteFile(path, []byte(seedFile), 0o600))

	f, err := Decode(path)
	require.NoError(t, err)
	return f
}

func TestLoader_Apply(t *testing.T) {
	ctx := context.Background()
	loader, reg := newLoader(t)

	result, err := loader.Apply(ctx, decodeSample(t), today)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Bookings)
	assert.Equal(t, 3, result.Payments)
	assert.Equal(t, 2, result.Customers)

	_, err = reg.GetBooking(ctx, "book-bad")
	assert.ErrorIs(t, err, registry.ErrBookingNotFound)

	first, err := reg.GetBooking(ctx, "book-001")
	require.NoError(t, err)
	assert.Equal(t, today.AddDate(0, 0, 2), first.EventDate)
	assert.Equal(t, int64(150000), first.PaidAmount)
	assert.Equal(t, domain.PaymentStatusAdvance, first.PaymentStatus)
	assert.Equal(t, today.AddDate(0, 0, -5), first.CreatedAt)

	payments, err := reg.GetPaymentsByBooking(ctx, "book-001")
	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.Equal(t, "pay-001", payments[0].ID)
	assert.Equal(t, "TRX-SL-001", *payments[0].TransactionID)
	assert.Equal(t, "book-001-opening", payments[1].ID)
	assert.Equal(t, int64(50000), payments[1].Amount)
	assert.Nil(t, payments[1].TransactionID)

	past, err := reg.GetBooking(ctx, "book-005")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusFull, past.PaymentStatus)
	assert.Zero(t, past.Balance())

	derived, err := reg.GetCustomer(ctx, "ruwan.s@example.com")
	require.NoError(t, err)
	assert.Equal(t, "cust-book-005", derived.ID)
	assert.Equal(t, "Ruwan Senanayake", derived.Name)

	summary, err := reg.CustomerSummary(ctx, "kasun.perera@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(150000), summary.TotalSpent)
	assert.Equal(t, 1, summary.UpcomingBookings)
}

func TestLoader_ApplyTwiceFails(t *testing.T) {
	ctx := context.Background()
	loader, _ := newLoader(t)
	f := decodeSample(t)

	_, err := loader.Apply(ctx, f, today)
	require.NoError(t, err)

	_, err = loader.Apply(ctx, f, today)
	assert.ErrorIs(t, err, ErrInvalidSeed)
}

func TestLoader_AdvanceAboveTotalRejected(t *testing.T) {
	loader, _ := newLoader(t)

	f := &File{Bookings: []Booking{{
		ID:            "book-x",
		CustomerEmail: "x@example.com",
		TimeSlot:      "09:00 - 13:00",
		GuestCount:    1,
		TotalAmount:   100,
		Advance:       200,
	}}}

	_, err := loader.Apply(context.Background(), f, today)
	assert.ErrorIs(t, err, ErrInvalidSeed)
}

func TestDecode_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[bookings]\nid = "), 0o600))

	_, err := Decode(path)
	assert.ErrorIs(t, err, ErrInvalidSeed)
}

func TestDecode_RepositorySeed(t *testing.T) {
	f, err := Decode(filepath.Join("..", "..", "..", "seed.toml"))
	require.NoError(t, err)

	loader, reg := newLoader(t)
	result, err := loader.Apply(context.Background(), f, today)
	require.NoError(t, err)

	assert.Equal(t, 6, result.Bookings)
	assert.Equal(t, 6, reg.Counts().Customers)
}
