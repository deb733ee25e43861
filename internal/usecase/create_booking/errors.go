package create_booking

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidDate возвращается, когда дата бронирования в прошлом
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidTimeSlot возвращается, когда слот отсутствует в каталоге
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrCapacityExceeded возвращается, когда гостей больше, чем вмещает зал
	ErrCapacityExceeded = errors.New("create_booking: guest count exceeds hall capacity")

	// ErrSlotNotAvailable возвращается, когда слот на дату уже занят
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// ValidationError ошибки валидации по полям запроса (имя поля -> сообщение)
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e.Fields[name])
	}
	return ErrInvalidInput.Error() + ": " + strings.Join(parts, "; ")
}

// Unwrap позволяет сравнивать ошибку с ErrInvalidInput через errors.Is
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
