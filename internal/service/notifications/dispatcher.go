package notifications

import (
	"context"

	"github.com/m04kA/HallBookingService/internal/domain"
)

// Каналы доставки
const (
	ChannelEmail = "email"
	ChannelSMS   = "sms"
)

// Delivery результат доставки по одному каналу
type Delivery struct {
	Channel string
	Sent    bool
	Skipped bool // канал не настроен или нет адресата
	Error   string
}

// Report результат отправки уведомления по всем каналам
type Report struct {
	Deliveries []Delivery
}

// Sent возвращает true, если хотя бы один канал доставил сообщение
func (r *Report) Sent() bool {
	for _, d := range r.Deliveries {
		if d.Sent {
			return true
		}
	}
	return false
}

// Dispatcher отправляет уведомления через настроенные транспорты
// Ошибка доставки логируется и учитывается в метриках, но не откатывает изменения в реестре
type Dispatcher struct {
	composer *Composer
	email    EmailSender
	sms      SMSSender
	metrics  Metrics
	logger   Logger
}

// NewDispatcher создает диспетчер; email, sms и metrics могут быть nil
func NewDispatcher(composer *Composer, email EmailSender, sms SMSSender, metrics Metrics, logger Logger) *Dispatcher {
	return &Dispatcher{
		composer: composer,
		email:    email,
		sms:      sms,
		metrics:  metrics,
		logger:   logger,
	}
}

// SendConfirmation отправляет письмо-подтверждение и SMS
func (d *Dispatcher) SendConfirmation(ctx context.Context, b *domain.Booking, invoiceNumber string) (*Report, error) {
	d.logger.Info("SendConfirmation: booking id=%s, email=%s", b.ID, b.CustomerEmail)

	if b.IsCancelled() {
		d.logger.Warn("SendConfirmation: booking id=%s is cancelled", b.ID)
		return nil, ErrBookingCancelled
	}

	email, err := d.composer.ConfirmationEmail(b, invoiceNumber)
	if err != nil {
		d.logger.Error("SendConfirmation: failed to render email for booking id=%s: %v", b.ID, err)
		return nil, err
	}

	report := &Report{}
	report.Deliveries = append(report.Deliveries,
		d.deliverEmail(ctx, b.ID, b.CustomerEmail, email),
		d.deliverSMS(ctx, b.ID, b.CustomerPhone, d.composer.ConfirmationMessage(b)),
	)
	return report, nil
}

// SendReminder отправляет напоминание об остатке
// Если остаток не положительный, возвращает ErrNoBalance и ничего не отправляет
func (d *Dispatcher) SendReminder(ctx context.Context, b *domain.Booking) (*Report, error) {
	d.logger.Info("SendReminder: booking id=%s, balance=%d", b.ID, b.Balance())

	if b.IsCancelled() {
		d.logger.Warn("SendReminder: booking id=%s is cancelled", b.ID)
		return nil, ErrBookingCancelled
	}

	message, ok := d.composer.ReminderMessage(b)
	if !ok {
		d.logger.Warn("SendReminder: booking id=%s has no outstanding balance", b.ID)
		return nil, ErrNoBalance
	}

	email, err := d.composer.ReminderEmail(b)
	if err != nil {
		d.logger.Error("SendReminder: failed to render email for booking id=%s: %v", b.ID, err)
		return nil, err
	}

	report := &Report{}
	report.Deliveries = append(report.Deliveries,
		d.deliverEmail(ctx, b.ID, b.CustomerEmail, email),
		d.deliverSMS(ctx, b.ID, b.CustomerPhone, message),
	)
	return report, nil
}

func (d *Dispatcher) deliverEmail(ctx context.Context, bookingID, to string, email *Email) Delivery {
	if d.email == nil || to == "" {
		return Delivery{Channel: ChannelEmail, Skipped: true}
	}

	if err := d.email.SendEmail(ctx, to, email.Subject, email.Body); err != nil {
		d.logger.Error("Notify: email delivery failed for booking id=%s: %v", bookingID, err)
		d.count(ChannelEmail, false)
		return Delivery{Channel: ChannelEmail, Error: err.Error()}
	}

	d.logger.Info("Notify: email sent for booking id=%s", bookingID)
	d.count(ChannelEmail, true)
	return Delivery{Channel: ChannelEmail, Sent: true}
}

func (d *Dispatcher) deliverSMS(ctx context.Context, bookingID, to, body string) Delivery {
	if d.sms == nil || to == "" {
		return Delivery{Channel: ChannelSMS, Skipped: true}
	}

	if err := d.sms.SendSMS(ctx, to, body); err != nil {
		d.logger.Error("Notify: sms delivery failed for booking id=%s: %v", bookingID, err)
		d.count(ChannelSMS, false)
		return Delivery{Channel: ChannelSMS, Error: err.Error()}
	}

	d.logger.Info("Notify: sms queued for booking id=%s", bookingID)
	d.count(ChannelSMS, true)
	return Delivery{Channel: ChannelSMS, Sent: true}
}

func (d *Dispatcher) count(channel string, success bool) {
	if d.metrics != nil {
		d.metrics.IncNotification(channel, success)
	}
}
