package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics набор prometheus-метрик сервиса
// Каждый экземпляр имеет собственный registry, поэтому несколько экземпляров
// (например, в тестах) не конфликтуют между собой.
// Доменные счетчики можно вызывать на nil, когда метрики выключены
type Metrics struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	bookingsCreated   *prometheus.CounterVec
	paymentsRecorded  *prometheus.CounterVec
	notificationsSent *prometheus.CounterVec
	registryRecords   *prometheus.GaugeVec
}

// New создаёт и регистрирует метрики с префиксом serviceName
func New(serviceName string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: serviceName,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		bookingsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "bookings_created_total",
			Help:      "Bookings created, by initial lifecycle status",
		}, []string{"status"}),
		paymentsRecorded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "payments_recorded_total",
			Help:      "Payments recorded, by payment status",
		}, []string{"status"}),
		notificationsSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "notifications_total",
			Help:      "Notification delivery attempts, by channel and result",
		}, []string{"channel", "result"}),
		registryRecords: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: serviceName,
			Name:      "registry_records",
			Help:      "Number of records held in the in-memory registry",
		}, []string{"collection"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpRequestDuration,
		m.bookingsCreated,
		m.paymentsRecorded,
		m.notificationsSent,
		m.registryRecords,
	)

	return m
}

// Handler возвращает HTTP handler для эндпоинта /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveHTTPRequest фиксирует обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// IncBookingCreated фиксирует создание бронирования
func (m *Metrics) IncBookingCreated(status string) {
	if m == nil {
		return
	}
	m.bookingsCreated.WithLabelValues(status).Inc()
}

// IncPaymentRecorded фиксирует запись платежа
func (m *Metrics) IncPaymentRecorded(status string) {
	if m == nil {
		return
	}
	m.paymentsRecorded.WithLabelValues(status).Inc()
}

// IncNotification фиксирует попытку доставки уведомления
func (m *Metrics) IncNotification(channel string, success bool) {
	if m == nil {
		return
	}
	result := "success"
	if !success {
		result = "failure"
	}
	m.notificationsSent.WithLabelValues(channel, result).Inc()
}

// SetRegistrySize обновляет размер коллекции реестра
func (m *Metrics) SetRegistrySize(collection string, size int) {
	if m == nil {
		return
	}
	m.registryRecords.WithLabelValues(collection).Set(float64(size))
}
