package smsqueue

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HallBookingService/pkg/logger"
)

type published struct {
	exchange, key string
	msg           amqp.Publishing
}

type fakeChannel struct {
	published []published
	err       error
	closed    bool
}

func (f *fakeChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, published{exchange: exchange, key: key, msg: msg})
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func newTestPublisher(ch Channel) *Publisher {
	p := newPublisher(ch, "notifications", "sms.send", logger.NewWithWriter(io.Discard, logger.LevelError))
	p.now = func() time.Time { return time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC) }
	return p
}

func TestPublisher_SendSMS(t *testing.T) {
	ch := &fakeChannel{}
	p := newTestPublisher(ch)

	require.NoError(t, p.SendSMS(context.Background(), " +94 71 123 4567 ", "Dear Kasun, your booking is confirmed"))
	require.Len(t, ch.published, 1)

	got := ch.published[0]
	assert.Equal(t, "notifications", got.exchange)
	assert.Equal(t, "sms.send", got.key)
	assert.Equal(t, "application/json", got.msg.ContentType)
	assert.Equal(t, amqp.Persistent, got.msg.DeliveryMode)

	var msg Message
	require.NoError(t, json.Unmarshal(got.msg.Body, &msg))
	assert.Equal(t, got.msg.MessageId, msg.ID)
	assert.Equal(t, "+94 71 123 4567", msg.To)
	assert.Equal(t, "Dear Kasun, your booking is confirmed", msg.Body)
	assert.Equal(t, time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC), msg.CreatedAt)
}

func TestPublisher_SendSMSErrors(t *testing.T) {
	p := newTestPublisher(&fakeChannel{})
	assert.ErrorIs(t, p.SendSMS(context.Background(), "", "body"), ErrInvalidMessage)
	assert.ErrorIs(t, p.SendSMS(context.Background(), "0711234567", "  "), ErrInvalidMessage)

	p = newTestPublisher(&fakeChannel{err: errors.New("channel closed")})
	assert.ErrorIs(t, p.SendSMS(context.Background(), "0711234567", "body"), ErrPublish)
}

func TestPublisher_Close(t *testing.T) {
	ch := &fakeChannel{}
	require.NoError(t, newTestPublisher(ch).Close())
	assert.True(t, ch.closed)
}
