package reports

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HallBookingService/internal/domain"
	"github.com/m04kA/HallBookingService/pkg/logger"
)

type mockTimeProvider struct {
	now time.Time
}

func (m *mockTimeProvider) Now() time.Time {
	return m.now
}

type mockRepository struct {
	bookings []*domain.Booking
	payments []*domain.Payment
	err      error
}

func (m *mockRepository) ListBookings(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	return m.bookings, m.err
}

func (m *mockRepository) ListPayments(ctx context.Context) ([]*domain.Payment, error) {
	return m.payments, m.err
}

func day(month time.Month, d int) time.Time {
	return time.Date(2026, month, d, 0, 0, 0, 0, time.UTC)
}

func newTestService(repo Repository) *Service {
	svc := NewService(repo, logger.NewWithWriter(io.Discard, logger.LevelError))
	svc.timeProvider = &mockTimeProvider{now: day(time.October, 15).Add(10 * time.Hour)}
	return svc
}

func TestService_Dashboard(t *testing.T) {
	repo := &mockRepository{
		bookings: []*domain.Booking{
			{ID: "b1", EventType: "Wedding Reception", EventDate: day(time.October, 20), Status: domain.StatusConfirmed,
				TotalAmount: 450000, PaidAmount: 150000, PaymentStatus: domain.PaymentStatusAdvance},
			{ID: "b2", EventType: "Birthday Party", EventDate: day(time.October, 15), Status: domain.StatusPending,
				TotalAmount: 80000, PaymentStatus: domain.PaymentStatusPending},
			{ID: "b3", EventType: "Wedding Reception", EventDate: day(time.September, 1), Status: domain.StatusConfirmed,
				TotalAmount: 300000, PaidAmount: 300000, PaymentStatus: domain.PaymentStatusFull},
			{ID: "b4", EventType: "Corporate Event", EventDate: day(time.November, 2), Status: domain.StatusCancelled,
				TotalAmount: 100000, PaymentStatus: domain.PaymentStatusPending},
		},
		payments: []*domain.Payment{
			{ID: "p1", BookingID: "b3", Amount: 100000, Method: domain.MethodCard, Status: domain.PaymentSuccess, PaidAt: day(time.August, 10)},
			{ID: "p2", BookingID: "b3", Amount: 200000, Method: domain.MethodBankTransfer, Status: domain.PaymentSuccess, PaidAt: day(time.September, 1)},
			{ID: "p3", BookingID: "b1", Amount: 150000, Method: domain.MethodCash, Status: domain.PaymentSuccess, PaidAt: day(time.October, 2)},
			{ID: "p4", BookingID: "b1", Amount: 50000, Method: domain.MethodCard, Status: domain.PaymentFailed, PaidAt: day(time.October, 3)},
		},
	}

	stats, err := newTestService(repo).Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(450000), stats.TotalRevenue)
	assert.Equal(t, 4, stats.TotalBookings)
	assert.Equal(t, 1, stats.UpcomingBookings)
	assert.Equal(t, 3, stats.PendingPayments)

	assert.Equal(t, []MonthRevenue{
		{Month: "2026-08", Label: "Aug 2026", Revenue: 100000},
		{Month: "2026-09", Label: "Sep 2026", Revenue: 200000},
		{Month: "2026-10", Label: "Oct 2026", Revenue: 150000},
	}, stats.MonthlyRevenue)

	assert.Equal(t, []EventTypeStat{
		{Type: "Wedding Reception", Count: 2},
		{Type: "Birthday Party", Count: 1},
		{Type: "Corporate Event", Count: 1},
	}, stats.BookingsByEventType)

	assert.Equal(t, []MethodRevenue{
		{Method: "cash", Amount: 150000},
		{Method: "card", Amount: 100000},
		{Method: "bank_transfer", Amount: 200000},
	}, stats.RevenueByPaymentMethod)
}

func TestService_DashboardEmpty(t *testing.T) {
	stats, err := newTestService(&mockRepository{}).Dashboard(context.Background())
	require.NoError(t, err)

	assert.Zero(t, stats.TotalRevenue)
	assert.Empty(t, stats.MonthlyRevenue)
	assert.Empty(t, stats.BookingsByEventType)
	assert.Len(t, stats.RevenueByPaymentMethod, 3)
}

func TestService_DashboardRepositoryError(t *testing.T) {
	_, err := newTestService(&mockRepository{err: errors.New("boom")}).Dashboard(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
