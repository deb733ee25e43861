package get_booking_payments

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/HallBookingService/internal/api/handlers"
	"github.com/m04kA/HallBookingService/internal/service/bookings"
)

const (
	msgMissingBookingID = "ID бронирования обязателен"
	msgBookingNotFound  = "бронирование не найдено"
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

// Handle GET /api/v1/bookings/{bookingId}/payments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]
	if bookingID == "" {
		h.logger.Warn("GET /bookings/{id}/payments - Missing booking ID")
		handlers.RespondBadRequest(w, msgMissingBookingID)
		return
	}

	payments, err := h.service.GetPayments(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id}/payments - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		default:
			h.logger.Error("GET /bookings/{id}/payments - Failed to get payments: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{id}/payments - Payments retrieved successfully: booking_id=%s, count=%d",
		bookingID, len(payments.Payments))
	handlers.RespondJSON(w, http.StatusOK, payments)
}
