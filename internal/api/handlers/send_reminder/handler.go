package send_reminder

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/HallBookingService/internal/api/handlers"
	sendReminder "github.com/m04kA/HallBookingService/internal/usecase/send_reminder"
)

const (
	msgMissingBookingID = "ID бронирования обязателен"
	msgBookingNotFound  = "бронирование не найдено"
	msgNothingToRemind  = "по бронированию нет задолженности"
)

type Handler struct {
	useCase SendReminderUseCase
	logger  Logger
}

func NewHandler(useCase SendReminderUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/reminder
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]
	if bookingID == "" {
		h.logger.Warn("POST /bookings/{id}/reminder - Missing booking ID")
		handlers.RespondBadRequest(w, msgMissingBookingID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, sendReminder.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/reminder - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, sendReminder.ErrNothingToRemind):
			h.logger.Warn("POST /bookings/{id}/reminder - Nothing to remind: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgNothingToRemind)

		default:
			h.logger.Error("POST /bookings/{id}/reminder - Failed to send reminder: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/reminder - Reminder processed: booking_id=%s, sent=%t",
		bookingID, result.Report != nil && result.Report.Sent())
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
