package registry

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("registry: booking not found")

	// ErrBookingAlreadyExists возвращается при повторном добавлении бронирования с тем же ID
	ErrBookingAlreadyExists = errors.New("registry: booking already exists")

	// ErrInvalidBooking возвращается при некорректных данных бронирования
	ErrInvalidBooking = errors.New("registry: invalid booking")

	// ErrPaymentAlreadyExists возвращается при повторном добавлении платежа с тем же ID
	ErrPaymentAlreadyExists = errors.New("registry: payment already exists")

	// ErrInvalidPayment возвращается при некорректных данных платежа
	ErrInvalidPayment = errors.New("registry: invalid payment")

	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("registry: customer not found")

	// ErrCustomerAlreadyExists возвращается, когда клиент с таким email уже существует
	ErrCustomerAlreadyExists = errors.New("registry: customer already exists")

	// ErrInvalidCustomer возвращается при некорректных данных клиента
	ErrInvalidCustomer = errors.New("registry: invalid customer")
)
