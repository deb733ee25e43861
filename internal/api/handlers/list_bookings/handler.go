package list_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/HallBookingService/internal/api/handlers"
	"github.com/m04kA/HallBookingService/internal/service/bookings"
)

const (
	msgInvalidDate             = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidIncludeCancelled = "некорректное значение includeCancelled"
	msgInvalidStatus           = "некорректный статус бронирования"
	msgInvalidPaymentStatus    = "некорректный статус оплаты, ожидается pending, advance или full"
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

// Handle GET /api/v1/bookings
// Query params: date, from, to (YYYY-MM-DD), status, paymentStatus, customer (email),
// q (имя, email или телефон), includeCancelled (bool)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parseQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /bookings - Invalid query: %v", err)
		switch {
		case errors.Is(err, errInvalidIncludeCancelled):
			handlers.RespondBadRequest(w, msgInvalidIncludeCancelled)
		case errors.Is(err, errInvalidPaymentStatus):
			handlers.RespondBadRequest(w, msgInvalidPaymentStatus)
		default:
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid status filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved successfully: count=%d", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
