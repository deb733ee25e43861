package smsqueue

import "time"

// Message задание на отправку SMS, которое забирает воркер SMS-шлюза
type Message struct {
	ID        string    `json:"id"`
	To        string    `json:"to"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}
