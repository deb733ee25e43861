package smsqueue

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher публикует задания на отправку SMS в topic exchange
type Publisher struct {
	conn       *amqp.Connection
	ch         Channel
	exchange   string
	routingKey string
	now        func() time.Time
	log        Logger
}

// NewPublisher подключается к брокеру и объявляет durable topic exchange
func NewPublisher(url, exchange, routingKey string, log Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("%w: dial: %v", ErrConnect, err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: open channel: %v", ErrConnect, err)
	}

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("%w: declare exchange %s: %v", ErrConnect, exchange, err)
	}

	log.Info("SMSQueue: connected, exchange=%s, routing_key=%s", exchange, routingKey)

	p := newPublisher(ch, exchange, routingKey, log)
	p.conn = conn
	return p, nil
}

func newPublisher(ch Channel, exchange, routingKey string, log Logger) *Publisher {
	return &Publisher{
		ch:         ch,
		exchange:   exchange,
		routingKey: routingKey,
		now:        time.Now,
		log:        log,
	}
}

// SendSMS ставит SMS в очередь; доставка выполняется воркером шлюза
func (p *Publisher) SendSMS(ctx context.Context, to, body string) error {
	to = strings.TrimSpace(to)
	if to == "" || strings.TrimSpace(body) == "" {
		return fmt.Errorf("%w: recipient and body are required", ErrInvalidMessage)
	}

	msg := Message{
		ID:        uuid.NewString(),
		To:        to,
		Body:      body,
		CreatedAt: p.now().UTC(),
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrPublish, err)
	}

	err = p.ch.PublishWithContext(ctx, p.exchange, p.routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    msg.ID,
		Timestamp:    msg.CreatedAt,
		Body:         payload,
	})
	if err != nil {
		p.log.Error("SMSQueue: publish failed, message_id=%s: %v", msg.ID, err)
		return fmt.Errorf("%w: %v", ErrPublish, err)
	}

	p.log.Info("SMSQueue: queued message_id=%s to=%s", msg.ID, to)
	return nil
}

// Close закрывает канал и соединение
func (p *Publisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
