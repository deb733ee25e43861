package record_payment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/HallBookingService/internal/api/handlers"
	recordPayment "github.com/m04kA/HallBookingService/internal/usecase/record_payment"
)

const (
	msgMissingBookingID     = "ID бронирования обязателен"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidInput         = "некорректные данные платежа"
	msgBookingNotFound      = "бронирование не найдено"
	msgBookingCancelled     = "бронирование отменено, платеж невозможен"
	msgExceedsBalance       = "сумма платежа превышает остаток по бронированию"
	msgPaymentAlreadyExists = "платеж уже записан"
)

type Handler struct {
	useCase RecordPaymentUseCase
	logger  Logger
}

func NewHandler(useCase RecordPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/payments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]
	if bookingID == "" {
		h.logger.Warn("POST /bookings/{id}/payments - Missing booking ID")
		handlers.RespondBadRequest(w, msgMissingBookingID)
		return
	}

	var req RecordPaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/payments - Invalid request body: booking_id=%s, error=%v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(bookingID))
	if err != nil {
		switch {
		case errors.Is(err, recordPayment.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/payments - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, recordPayment.ErrBookingCancelled):
			h.logger.Warn("POST /bookings/{id}/payments - Booking cancelled: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgBookingCancelled)

		case errors.Is(err, recordPayment.ErrExceedsBalance):
			h.logger.Warn("POST /bookings/{id}/payments - Exceeds balance: booking_id=%s, amount=%d", bookingID, req.Amount)
			handlers.RespondBadRequest(w, msgExceedsBalance)

		case errors.Is(err, recordPayment.ErrPaymentAlreadyExists):
			h.logger.Warn("POST /bookings/{id}/payments - Payment already exists: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgPaymentAlreadyExists)

		case errors.Is(err, recordPayment.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/payments - Invalid input: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings/{id}/payments - Failed to record payment: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/payments - Payment recorded successfully: booking_id=%s, payment_id=%s, amount=%d",
		bookingID, result.Payment.ID, result.Payment.Amount)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
