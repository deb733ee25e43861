package list_bookings

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HallBookingService/internal/service/bookings"
	"github.com/m04kA/HallBookingService/internal/service/bookings/models"
	"github.com/m04kA/HallBookingService/pkg/logger"
)

type mockService struct {
	got *models.ListBookingsRequest
	err error
}

func (m *mockService) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	m.got = req
	if m.err != nil {
		return nil, m.err
	}
	return &models.BookingListResponse{Bookings: []models.BookingResponse{}}, nil
}

func TestParseQuery(t *testing.T) {
	q := url.Values{}
	q.Set("from", "2026-10-01")
	q.Set("to", "2026-10-31")
	q.Set("status", "confirmed")
	q.Set("paymentStatus", "advance")
	q.Set("customer", "kasun@example.com")
	q.Set("q", " perera ")
	q.Set("includeCancelled", "true")

	req, err := parseQuery(q)
	require.NoError(t, err)
	assert.Nil(t, req.Date)
	assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), *req.From)
	assert.Equal(t, time.Date(2026, 10, 31, 0, 0, 0, 0, time.UTC), *req.To)
	assert.Equal(t, "confirmed", *req.Status)
	assert.Equal(t, "advance", *req.PaymentStatus)
	assert.Equal(t, "kasun@example.com", *req.CustomerEmail)
	assert.Equal(t, "perera", req.Query)
	assert.True(t, req.IncludeCancelled)

	_, err = parseQuery(url.Values{"paymentStatus": {"partial"}})
	assert.ErrorIs(t, err, errInvalidPaymentStatus)

	_, err = parseQuery(url.Values{"date": {"15.10.2026"}})
	assert.ErrorIs(t, err, errInvalidDate)

	_, err = parseQuery(url.Values{"includeCancelled": {"maybe"}})
	assert.ErrorIs(t, err, errInvalidIncludeCancelled)
}

func TestHandler(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		err      error
		wantCode int
	}{
		{"no filters", "", nil, http.StatusOK},
		{"by date", "?date=2026-10-20", nil, http.StatusOK},
		{"bad date", "?date=tomorrow", nil, http.StatusBadRequest},
		{"bad status", "?status=archived", bookings.ErrInvalidInput, http.StatusBadRequest},
		{"by payment status and search", "?paymentStatus=full&q=kasun", nil, http.StatusOK},
		{"bad payment status", "?paymentStatus=partial", nil, http.StatusBadRequest},
		{"internal", "", bookings.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{err: tt.err}
			h := NewHandler(svc, logger.NewWithWriter(io.Discard, logger.LevelError))

			w := httptest.NewRecorder()
			h.Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/bookings"+tt.query, nil))
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}
