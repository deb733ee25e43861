package update_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/HallBookingService/internal/api/handlers"
	"github.com/m04kA/HallBookingService/internal/service/bookings"
	"github.com/m04kA/HallBookingService/internal/service/bookings/models"
)

const (
	msgMissingBookingID   = "ID бронирования обязателен"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgBookingNotFound    = "бронирование не найдено"
	msgInvalidInput       = "некорректные данные бронирования"
	msgInvalidStatus      = "недопустимый переход статуса бронирования"
	msgInvalidAmount      = "сумма бронирования не может быть меньше уже оплаченной"
	msgInvalidTimeSlot    = "некорректный временной слот"
	msgCapacityExceeded   = "количество гостей превышает вместимость зала"
	msgSlotNotAvailable   = "выбранный временной слот уже занят"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]
	if bookingID == "" {
		h.logger.Warn("PATCH /bookings/{id} - Missing booking ID")
		handlers.RespondBadRequest(w, msgMissingBookingID)
		return
	}

	var req models.UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id} - Invalid request body: booking_id=%s, error=%v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	booking, err := h.service.Update(r.Context(), bookingID, &req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id} - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrSlotNotAvailable):
			h.logger.Warn("PATCH /bookings/{id} - Slot not available: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, bookings.ErrInvalidStatus):
			h.logger.Warn("PATCH /bookings/{id} - Invalid status: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, bookings.ErrInvalidAmount):
			h.logger.Warn("PATCH /bookings/{id} - Invalid amount: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidAmount)

		case errors.Is(err, bookings.ErrInvalidTimeSlot):
			h.logger.Warn("PATCH /bookings/{id} - Invalid time slot: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, bookings.ErrCapacityExceeded):
			h.logger.Warn("PATCH /bookings/{id} - Capacity exceeded: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgCapacityExceeded)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id} - Invalid input: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /bookings/{id} - Failed to update booking: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id} - Booking updated successfully: booking_id=%s", bookingID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
