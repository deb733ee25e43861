package notifications

import "context"

// EmailSender транспорт электронной почты
type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, htmlBody string) error
}

// SMSSender транспорт SMS
type SMSSender interface {
	SendSMS(ctx context.Context, to, body string) error
}

// Metrics счётчики доставки
type Metrics interface {
	IncNotification(channel string, success bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
