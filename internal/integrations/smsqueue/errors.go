package smsqueue

import "errors"

var (
	// ErrConnect возвращается, когда не удалось подключиться к брокеру
	ErrConnect = errors.New("smsqueue: failed to connect to broker")

	// ErrPublish возвращается, когда сообщение не удалось опубликовать
	ErrPublish = errors.New("smsqueue: failed to publish message")

	// ErrInvalidMessage возвращается для сообщения без получателя или текста
	ErrInvalidMessage = errors.New("smsqueue: invalid message")
)
