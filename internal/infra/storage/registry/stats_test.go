package registry

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HallBookingService/internal/domain"
)

type recordingGauge struct {
	mu    sync.Mutex
	sizes map[string]int
}

func (g *recordingGauge) SetRegistrySize(collection string, size int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.sizes == nil {
		g.sizes = make(map[string]int)
	}
	g.sizes[collection] = size
}

func (g *recordingGauge) get(collection string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.sizes[collection]
}

func TestRegistry_ReportSize(t *testing.T) {
	reg := New(nil)
	ctx := context.Background()

	_, err := reg.AddBooking(ctx, &domain.Booking{
		ID:          "book-001",
		EventDate:   time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC),
		TimeSlot:    "09:00 - 13:00",
		GuestCount:  10,
		TotalAmount: 1000,
		Status:      domain.StatusPending,
	})
	require.NoError(t, err)
	_, err = reg.AddPayment(ctx, &domain.Payment{ID: "pay-001", BookingID: "book-001", Amount: 500, Status: domain.PaymentSuccess})
	require.NoError(t, err)

	g := &recordingGauge{}
	reg.ReportSize(g)

	assert.Equal(t, 1, g.get("bookings"))
	assert.Equal(t, 1, g.get("payments"))
	assert.Equal(t, 0, g.get("customers"))
}

func TestRegistry_StartSizeReporter(t *testing.T) {
	reg := New(nil)
	g := &recordingGauge{}
	stop := make(chan struct{})
	defer close(stop)

	reg.StartSizeReporter(g, 10*time.Millisecond, stop)

	_, err := reg.AddCustomer(context.Background(), &domain.Customer{
		ID: "cust-001", Name: "Kasun Perera", Email: "kasun@example.com", Phone: "0711234567",
	})
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		return g.get("customers") == 1
	}, time.Second, 10*time.Millisecond)
}
