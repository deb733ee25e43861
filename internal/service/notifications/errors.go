package notifications

import "errors"

var (
	// ErrNoBalance возвращается, когда по бронированию нечего напоминать
	ErrNoBalance = errors.New("notifications: booking has no outstanding balance")

	// ErrBookingCancelled возвращается при попытке уведомить по отменённому бронированию
	ErrBookingCancelled = errors.New("notifications: booking is cancelled")

	// ErrRender возвращается при ошибке сборки письма
	ErrRender = errors.New("notifications: failed to render message")
)
