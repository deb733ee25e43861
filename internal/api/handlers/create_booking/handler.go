package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/HallBookingService/internal/api/handlers"
	createBooking "github.com/m04kA/HallBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "данные бронирования заполнены некорректно"
	msgInvalidInput       = "некорректные данные бронирования"
	msgPastDate           = "нельзя забронировать дату в прошлом"
	msgInvalidTimeSlot    = "некорректный временной слот"
	msgCapacityExceeded   = "количество гостей превышает вместимость зала"
	msgSlotNotAvailable   = "выбранный временной слот уже занят"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		if vErr, ok := createBooking.IsValidationError(err); ok {
			h.logger.Warn("POST /bookings - Validation failed: email=%s, error=%v", req.CustomerEmail, err)
			handlers.RespondValidationError(w, msgValidationFailed, vErr.Fields)
			return
		}

		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: date=%s, slot=%s", req.Date, req.TimeSlot)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Date in the past: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: slot=%s", req.TimeSlot)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrCapacityExceeded):
			h.logger.Warn("POST /bookings - Capacity exceeded: guests=%d", req.GuestCount)
			handlers.RespondBadRequest(w, msgCapacityExceeded)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: date=%s, slot=%s, error=%v",
				req.Date, req.TimeSlot, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, date=%s, slot=%s",
		result.Booking.ID, req.Date, req.TimeSlot)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
