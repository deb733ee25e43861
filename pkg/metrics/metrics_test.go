package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New("hall_booking")

	m.IncBookingCreated("confirmed")
	m.IncBookingCreated("confirmed")
	m.IncPaymentRecorded("failed")
	m.IncNotification("email", false)
	m.SetRegistrySize("bookings", 6)
	m.ObserveHTTPRequest(http.MethodGet, "/api/v1/bookings", http.StatusOK, 10*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.bookingsCreated.WithLabelValues("confirmed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.paymentsRecorded.WithLabelValues("failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.notificationsSent.WithLabelValues("email", "failure")))
	assert.Equal(t, 6.0, testutil.ToFloat64(m.registryRecords.WithLabelValues("bookings")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/v1/bookings", "200")))
}

func TestMetrics_HandlerExposesOwnRegistry(t *testing.T) {
	m := New("hall_booking")
	m.IncBookingCreated("pending")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `hall_booking_bookings_created_total{status="pending"} 1`)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncBookingCreated("confirmed")
		m.IncPaymentRecorded("success")
		m.IncNotification("email", false)
		m.SetRegistrySize("bookings", 3)
	})
}
