package record_payment

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HallBookingService/internal/domain"
	recordPayment "github.com/m04kA/HallBookingService/internal/usecase/record_payment"
	"github.com/m04kA/HallBookingService/pkg/logger"
)

type mockUseCase struct {
	got  *recordPayment.Request
	resp *recordPayment.Response
	err  error
}

func (m *mockUseCase) Execute(ctx context.Context, req *recordPayment.Request) (*recordPayment.Response, error) {
	m.got = req
	return m.resp, m.err
}

func serve(uc *mockUseCase, path, body string) *httptest.ResponseRecorder {
	h := NewHandler(uc, logger.NewWithWriter(io.Discard, logger.LevelError))

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/bookings/{bookingId}/payments", h.Handle).Methods(http.MethodPost)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, path, strings.NewReader(body)))
	return w
}

func TestHandler_Recorded(t *testing.T) {
	uc := &mockUseCase{resp: &recordPayment.Response{
		Payment: &domain.Payment{
			ID: "pay-001", BookingID: "book-001", Amount: 300000,
			Type: domain.PaymentTypeBalance, Method: domain.MethodCard, Status: domain.PaymentSuccess,
			PaidAt: time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC),
		},
		Booking: &domain.Booking{
			ID: "book-001", TotalAmount: 450000, PaidAmount: 450000,
			Status: domain.StatusConfirmed, PaymentStatus: domain.PaymentStatusFull,
		},
	}}

	w := serve(uc, "/api/v1/bookings/book-001/payments", `{"amount":300000,"type":"balance","method":"card"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "book-001", uc.got.BookingID)
	assert.Equal(t, int64(300000), uc.got.Amount)

	var body RecordPaymentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "pay-001", body.Payment.ID)
	assert.Equal(t, "full", body.Booking.PaymentStatus)
	assert.Zero(t, body.Booking.Balance)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"not found", recordPayment.ErrBookingNotFound, http.StatusNotFound},
		{"cancelled", recordPayment.ErrBookingCancelled, http.StatusConflict},
		{"exceeds balance", recordPayment.ErrExceedsBalance, http.StatusBadRequest},
		{"duplicate", recordPayment.ErrPaymentAlreadyExists, http.StatusConflict},
		{"invalid", recordPayment.ErrInvalidInput, http.StatusBadRequest},
		{"internal", recordPayment.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(&mockUseCase{err: tt.err}, "/api/v1/bookings/book-001/payments",
				`{"amount":10,"type":"advance","method":"cash"}`)
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}
