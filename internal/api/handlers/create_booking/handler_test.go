package create_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HallBookingService/internal/api/handlers"
	"github.com/m04kA/HallBookingService/internal/domain"
	"github.com/m04kA/HallBookingService/internal/service/notifications"
	createBooking "github.com/m04kA/HallBookingService/internal/usecase/create_booking"
	"github.com/m04kA/HallBookingService/pkg/logger"
)

type mockUseCase struct {
	got  *createBooking.Request
	resp *createBooking.Response
	err  error
}

func (m *mockUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	m.got = req
	return m.resp, m.err
}

const validBody = `{
	"customerName": "Kasun Perera",
	"customerEmail": "kasun@example.com",
	"customerPhone": "+94 71 123 4567",
	"date": "2026-10-20",
	"timeSlot": "09:00 - 13:00",
	"eventType": "Wedding Reception",
	"guestCount": 200,
	"totalAmount": 450000,
	"advanceAmount": 150000,
	"paymentMethod": "cash"
}`

func serve(t *testing.T, uc *mockUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(uc, logger.NewWithWriter(io.Discard, logger.LevelError))

	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body)))
	return w
}

func TestHandler_Created(t *testing.T) {
	uc := &mockUseCase{resp: &createBooking.Response{
		Booking: &domain.Booking{
			ID:            "book-001",
			CustomerName:  "Kasun Perera",
			EventDate:     time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC),
			TimeSlot:      "09:00 - 13:00",
			TotalAmount:   450000,
			PaidAmount:    150000,
			Status:        domain.StatusConfirmed,
			PaymentStatus: domain.PaymentStatusAdvance,
		},
		InvoiceNumber: "INV-202610-0001",
		Notification: &notifications.Report{Deliveries: []notifications.Delivery{
			{Channel: notifications.ChannelEmail, Sent: true},
			{Channel: notifications.ChannelSMS, Skipped: true},
		}},
	}}

	w := serve(t, uc, validBody)
	require.Equal(t, http.StatusCreated, w.Code)

	require.NotNil(t, uc.got)
	assert.Equal(t, int64(450000), *uc.got.TotalAmount)
	assert.Equal(t, 200, uc.got.GuestCount)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "book-001", body["id"])
	assert.Equal(t, "2026-10-20", body["date"])
	assert.Equal(t, float64(300000), body["balance"])
	assert.Equal(t, "INV-202610-0001", body["invoiceNumber"])
	notification := body["notification"].(map[string]interface{})
	assert.Equal(t, true, notification["sent"])
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"bad json", `{"guestCount": "many"}`, nil, http.StatusBadRequest, msgInvalidRequestBody},
		{"unknown field", `{"hallId": 1}`, nil, http.StatusBadRequest, msgInvalidRequestBody},
		{"slot taken", validBody, fmt.Errorf("%w: 09:00 - 13:00", createBooking.ErrSlotNotAvailable), http.StatusConflict, msgSlotNotAvailable},
		{"past date", validBody, createBooking.ErrInvalidDate, http.StatusBadRequest, msgPastDate},
		{"unknown slot", validBody, createBooking.ErrInvalidTimeSlot, http.StatusBadRequest, msgInvalidTimeSlot},
		{"capacity", validBody, createBooking.ErrCapacityExceeded, http.StatusBadRequest, msgCapacityExceeded},
		{"internal", validBody, createBooking.ErrInternal, http.StatusInternalServerError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(t, &mockUseCase{err: tt.err}, tt.body)
			assert.Equal(t, tt.wantCode, w.Code)

			var body handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Code)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, body.Message)
			}
		})
	}
}

func TestHandler_ValidationFields(t *testing.T) {
	uc := &mockUseCase{err: &createBooking.ValidationError{Fields: map[string]string{
		"customerEmail": "invalid email format",
		"guestCount":    "is required",
	}}}

	w := serve(t, uc, validBody)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, msgValidationFailed, body.Message)
	assert.Equal(t, "invalid email format", body.Fields["customerEmail"])
	assert.Equal(t, "is required", body.Fields["guestCount"])
}
