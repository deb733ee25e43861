package record_payment

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("record_payment: booking not found")

	// ErrBookingCancelled возвращается при попытке оплатить отмененное бронирование
	ErrBookingCancelled = errors.New("record_payment: booking is cancelled")

	// ErrExceedsBalance возвращается, когда успешный платеж превышает остаток
	ErrExceedsBalance = errors.New("record_payment: payment exceeds outstanding balance")

	// ErrPaymentAlreadyExists возвращается при повторном ID платежа
	ErrPaymentAlreadyExists = errors.New("record_payment: payment already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("record_payment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("record_payment: internal error")
)
