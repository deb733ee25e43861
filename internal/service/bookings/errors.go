package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrCannotCancel возвращается, когда бронирование не может быть отменено
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrInvalidStatus возвращается при попытке установить недопустимый статус
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidAmount возвращается, когда сумма меньше уже оплаченной или отрицательная
	ErrInvalidAmount = errors.New("invalid booking amount")

	// ErrInvalidTimeSlot возвращается, когда слот отсутствует в каталоге
	ErrInvalidTimeSlot = errors.New("invalid time slot")

	// ErrSlotNotAvailable возвращается, когда слот на дату занят другим бронированием
	ErrSlotNotAvailable = errors.New("slot is not available")

	// ErrCapacityExceeded возвращается, когда количество гостей превышает вместимость зала
	ErrCapacityExceeded = errors.New("guest count exceeds hall capacity")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
