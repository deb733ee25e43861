package customers

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HallBookingService/internal/domain"
	"github.com/m04kA/HallBookingService/internal/infra/storage/registry"
	"github.com/m04kA/HallBookingService/internal/service/customers/models"
	"github.com/m04kA/HallBookingService/pkg/logger"
	"github.com/m04kA/HallBookingService/pkg/ptr"
)

type sequenceIDs struct {
	n int
}

func (s *sequenceIDs) NewID() string {
	s.n++
	return fmt.Sprintf("cust-%03d", s.n)
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func newTestService() (*Service, *registry.Registry) {
	reg := registry.New(fixedClock{now: time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)})
	return NewService(reg, &sequenceIDs{}, logger.NewWithWriter(io.Discard, logger.LevelError)), reg
}

func createKasun(t *testing.T, svc *Service) *models.CustomerResponse {
	t.Helper()
	resp, err := svc.Create(context.Background(), &models.CreateCustomerRequest{
		Name:  "Kasun Perera",
		Email: "Kasun.Perera@Example.com",
		Phone: "+94 71 123 4567",
	})
	require.NoError(t, err)
	return resp
}

func TestService_Create(t *testing.T) {
	svc, _ := newTestService()

	resp := createKasun(t, svc)
	assert.Equal(t, "cust-001", resp.ID)
	assert.Equal(t, "kasun.perera@example.com", resp.Email)

	_, err := svc.Create(context.Background(), &models.CreateCustomerRequest{
		Name:  "Kasun Again",
		Email: "kasun.perera@example.com ",
		Phone: "0711234567",
	})
	assert.ErrorIs(t, err, ErrCustomerAlreadyExists)
}

func TestService_CreateValidation(t *testing.T) {
	svc, _ := newTestService()

	tests := []struct {
		name string
		req  models.CreateCustomerRequest
	}{
		{"short name", models.CreateCustomerRequest{Name: "K", Email: "k@example.com", Phone: "0711234567"}},
		{"bad email", models.CreateCustomerRequest{Name: "Kasun", Email: "kasun.example.com", Phone: "0711234567"}},
		{"short phone", models.CreateCustomerRequest{Name: "Kasun", Email: "k@example.com", Phone: "071 123"}},
		{"letters in phone", models.CreateCustomerRequest{Name: "Kasun", Email: "k@example.com", Phone: "071123456x7"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestService_Ensure(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Ensure(ctx, "Nimali Silva", "nimali@example.com", "0771234567")
	require.NoError(t, err)
	assert.Equal(t, "Nimali Silva", created.Name)

	again, err := svc.Ensure(ctx, "Other Name", "NIMALI@example.com", "0770000000")
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)
	assert.Equal(t, "Nimali Silva", again.Name)
}

func TestService_Update(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	kasun := createKasun(t, svc)
	_, err := svc.Create(ctx, &models.CreateCustomerRequest{Name: "Nimali Silva", Email: "nimali@example.com", Phone: "0771234567"})
	require.NoError(t, err)

	resp, err := svc.Update(ctx, kasun.ID, &models.UpdateCustomerRequest{
		Address: ptr.Ptr("Colombo 05"),
		Email:   ptr.Ptr("kasun@example.lk"),
	})
	require.NoError(t, err)
	assert.Equal(t, "kasun@example.lk", resp.Email)
	assert.Equal(t, "Colombo 05", *resp.Address)

	_, err = svc.Update(ctx, kasun.ID, &models.UpdateCustomerRequest{Email: ptr.Ptr("nimali@example.com")})
	assert.ErrorIs(t, err, ErrCustomerAlreadyExists)

	_, err = svc.Update(ctx, kasun.ID, &models.UpdateCustomerRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Update(ctx, kasun.ID, &models.UpdateCustomerRequest{Phone: ptr.Ptr("123")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Update(ctx, "cust-999", &models.UpdateCustomerRequest{Name: ptr.Ptr("Nobody")})
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestService_GetSummary(t *testing.T) {
	svc, reg := newTestService()
	ctx := context.Background()
	createKasun(t, svc)

	for i, day := range []int{20, 25} {
		_, err := reg.AddBooking(ctx, &domain.Booking{
			ID:            fmt.Sprintf("book-%d", i+1),
			CustomerName:  "Kasun Perera",
			CustomerEmail: "kasun.perera@example.com",
			EventDate:     time.Date(2026, 10, day, 0, 0, 0, 0, time.UTC),
			TimeSlot:      "09:00 - 13:00",
			GuestCount:    50,
			TotalAmount:   100000,
			Status:        domain.StatusConfirmed,
		})
		require.NoError(t, err)
	}
	_, err := reg.AddPayment(ctx, &domain.Payment{ID: "pay-1", BookingID: "book-1", Amount: 40000, Status: domain.PaymentSuccess})
	require.NoError(t, err)

	summary, err := svc.GetSummary(ctx, "KASUN.PERERA@example.com")
	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalBookings)
	assert.Equal(t, 2, summary.UpcomingBookings)
	assert.Equal(t, int64(40000), summary.TotalSpent)
	require.Len(t, summary.Bookings, 2)
	assert.Equal(t, "book-2", summary.Bookings[0].ID)

	_, err = svc.GetSummary(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestService_Search(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	createKasun(t, svc)
	_, err := svc.Create(ctx, &models.CreateCustomerRequest{Name: "Nimali Silva", Email: "nimali@example.com", Phone: "077 987 6543"})
	require.NoError(t, err)

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"Kasun Perera", "Nimali Silva"}},
		{"kasun", []string{"Kasun Perera"}},
		{"EXAMPLE.COM", []string{"Kasun Perera", "Nimali Silva"}},
		{"987", []string{"Nimali Silva"}},
		{"nobody", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			resp, err := svc.Search(ctx, tt.query)
			require.NoError(t, err)

			names := make([]string, 0, len(resp.Customers))
			for _, c := range resp.Customers {
				names = append(names, c.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}
