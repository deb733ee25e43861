package get_invoice

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/HallBookingService/internal/api/handlers"
	"github.com/m04kA/HallBookingService/internal/service/invoice"
)

const (
	msgMissingBookingID = "ID бронирования обязателен"
	msgBookingNotFound  = "бронирование не найдено"
)

type Handler struct {
	service InvoiceService
	logger  Logger
}

func NewHandler(service InvoiceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{bookingId}/invoice
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]
	if bookingID == "" {
		h.logger.Warn("GET /bookings/{id}/invoice - Missing booking ID")
		handlers.RespondBadRequest(w, msgMissingBookingID)
		return
	}

	inv, err := h.service.GetInvoice(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, invoice.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id}/invoice - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		default:
			h.logger.Error("GET /bookings/{id}/invoice - Failed to compose invoice: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{id}/invoice - Invoice composed successfully: booking_id=%s, number=%s", bookingID, inv.Number)
	handlers.RespondJSON(w, http.StatusOK, FromInvoice(inv))
}
