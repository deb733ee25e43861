package send_reminder

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("send_reminder: booking not found")

	// ErrNothingToRemind возвращается, когда остаток не положительный или бронирование отменено
	ErrNothingToRemind = errors.New("send_reminder: booking has no outstanding balance")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("send_reminder: internal error")
)
