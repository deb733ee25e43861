package notifications

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
	"github.com/m04kA/HallBookingService/pkg/money"
)

type sentEmail struct {
	to, subject, body string
}

type mockEmailSender struct {
	sent []sentEmail
	err  error
}

func (m *mockEmailSender) SendEmail(ctx context.Context, to, subject, htmlBody string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentEmail{to: to, subject: subject, body: htmlBody})
	return nil
}

type mockSMSSender struct {
	sent []string
	err  error
}

func (m *mockSMSSender) SendSMS(ctx context.Context, to, body string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, to+": "+body)
	return nil
}

type mockMetrics struct {
	counts map[string]int
}

func (m *mockMetrics) IncNotification(channel string, success bool) {
	if m.counts == nil {
		m.counts = make(map[string]int)
	}
	result := "success"
	if !success {
		result = "failure"
	}
	m.counts[channel+"/"+result]++
}

func newComposer() *Composer {
	return NewComposer(domain.Hall{
		Name:    "Royal Grand Banquet Hall",
		Address: "No. 120, High Level Road, Maharagama, Sri Lanka",
		Phone:   "+94 11 345 6789",
	}, money.MustFormatter(money.DefaultCurrency))
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
		Status:        domain.StatusConfirmed,
		CreatedAt:     time.Date(2026, 10, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestComposer_ConfirmationMessage(t *testing.T) {
	msg := newComposer().ConfirmationMessage(testBooking())

	assert.Equal(t,
		"Dear Kasun Perera, your booking at Royal Grand Banquet Hall on Oct 17, 2026 from 09:00 - 13:00 "+
			"has been confirmed. Total amount: LKR 450,000. Thank you!",
		msg)
}

func TestComposer_ReminderMessage(t *testing.T) {
	c := newComposer()

	msg, ok := c.ReminderMessage(testBooking())
	require.True(t, ok)
	assert.Equal(t,
		"Reminder: You have a pending balance of LKR 300,000 for your booking on Oct 17, 2026. "+
			"Please complete the payment before the event date.",
		msg)

	paid := testBooking()
	paid.PaidAmount = paid.TotalAmount
	_, ok = c.ReminderMessage(paid)
	assert.False(t, ok)
}

func TestComposer_ConfirmationEmail(t *testing.T) {
	b := testBooking()
	b.CustomerName = "Kasun <script>"

	email, err := newComposer().ConfirmationEmail(b, "INV-202610-0001")
	require.NoError(t, err)

	assert.Equal(t, "Booking Confirmation - Royal Grand Banquet Hall", email.Subject)
	assert.Contains(t, email.Body, "INV-202610-0001")
	assert.Contains(t, email.Body, "LKR 450,000")
	assert.Contains(t, email.Body, "LKR 150,000")
	assert.Contains(t, email.Body, "LKR 300,000")
	assert.Contains(t, email.Body, "Oct 17, 2026")
	assert.Contains(t, email.Body, "Kasun &lt;script&gt;")
	assert.NotContains(t, email.Body, "<script>")
}

func TestComposer_ReminderEmailWithoutBalance(t *testing.T) {
	b := testBooking()
	b.PaidAmount = b.TotalAmount

	_, err := newComposer().ReminderEmail(b)
	assert.ErrorIs(t, err, ErrNoBalance)
}

func newDispatcher(email EmailSender, sms SMSSender, metrics Metrics) *Dispatcher {
	return NewDispatcher(newComposer(), email, sms, metrics, logger.NewWithWriter(io.Discard, logger.LevelError))
}

func TestDispatcher_SendConfirmation(t *testing.T) {
	email := &mockEmailSender{}
	sms := &mockSMSSender{}
	metrics := &mockMetrics{}

	report, err := newDispatcher(email, sms, metrics).SendConfirmation(context.Background(), testBooking(), "INV-202610-0001")
	require.NoError(t, err)
	assert.True(t, report.Sent())
	require.Len(t, report.Deliveries, 2)

	require.Len(t, email.sent, 1)
	assert.Equal(t, "kasun.perera@example.com", email.sent[0].to)
	require.Len(t, sms.sent, 1)
	assert.Contains(t, sms.sent[0], "+94 71 123 4567: Dear Kasun Perera")

	assert.Equal(t, 1, metrics.counts["email/success"])
	assert.Equal(t, 1, metrics.counts["sms/success"])
}

func TestDispatcher_DeliveryFailureIsReported(t *testing.T) {
	email := &mockEmailSender{err: errors.New("smtp down")}
	metrics := &mockMetrics{}

	report, err := newDispatcher(email, nil, metrics).SendConfirmation(context.Background(), testBooking(), "INV-1")
	require.NoError(t, err)
	assert.False(t, report.Sent())

	assert.Equal(t, ChannelEmail, report.Deliveries[0].Channel)
	assert.Equal(t, "smtp down", report.Deliveries[0].Error)
	assert.True(t, report.Deliveries[1].Skipped)
	assert.Equal(t, 1, metrics.counts["email/failure"])
}

func TestDispatcher_SendReminder(t *testing.T) {
	sms := &mockSMSSender{}
	d := newDispatcher(nil, sms, nil)

	report, err := d.SendReminder(context.Background(), testBooking())
	require.NoError(t, err)
	assert.True(t, report.Sent())
	require.Len(t, sms.sent, 1)
	assert.Contains(t, sms.sent[0], "LKR 300,000")

	paid := testBooking()
	paid.PaidAmount = paid.TotalAmount
	_, err = d.SendReminder(context.Background(), paid)
	assert.ErrorIs(t, err, ErrNoBalance)

	cancelled := testBooking()
	cancelled.Status = domain.StatusCancelled
	_, err = d.SendReminder(context.Background(), cancelled)
	assert.ErrorIs(t, err, ErrBookingCancelled)
}
