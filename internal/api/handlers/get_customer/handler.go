package get_customer

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/HallBookingService/internal/api/handlers"
	"github.com/m04kA/HallBookingService/internal/service/customers"
)

const (
	msgMissingEmail     = "email клиента обязателен"
	msgCustomerNotFound = "клиент не найден"
)

type Handler struct {
	service CustomerService
	logger  Logger
}

func NewHandler(service CustomerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/customers/{email}
// Возвращает клиента с его бронированиями и вычисленной статистикой
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]
	if email == "" {
		h.logger.Warn("GET /customers/{email} - Missing email")
		handlers.RespondBadRequest(w, msgMissingEmail)
		return
	}

	summary, err := h.service.GetSummary(r.Context(), email)
	if err != nil {
		switch {
		case errors.Is(err, customers.ErrCustomerNotFound):
			h.logger.Warn("GET /customers/{email} - Customer not found: email=%s", email)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		default:
			h.logger.Error("GET /customers/{email} - Failed to get customer: email=%s, error=%v", email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /customers/{email} - Customer retrieved successfully: email=%s, bookings=%d",
		email, summary.TotalBookings)
	handlers.RespondJSON(w, http.StatusOK, summary)
}
