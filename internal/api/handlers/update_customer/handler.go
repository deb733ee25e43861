package update_customer

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/HallBookingService/internal/api/handlers"
	"github.com/m04kA/HallBookingService/internal/service/customers"
	"github.com/m04kA/HallBookingService/internal/service/customers/models"
)

const (
	msgMissingCustomerID  = "ID клиента обязателен"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные клиента"
	msgCustomerNotFound   = "клиент не найден"
	msgEmailTaken         = "клиент с таким email уже существует"
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

// Handle PATCH /api/v1/customers/{customerId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID := mux.Vars(r)["customerId"]
	if customerID == "" {
		h.logger.Warn("PATCH /customers/{id} - Missing customer ID")
		handlers.RespondBadRequest(w, msgMissingCustomerID)
		return
	}

	var req models.UpdateCustomerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /customers/{id} - Invalid request body: customer_id=%s, error=%v", customerID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	customer, err := h.service.Update(r.Context(), customerID, &req)
	if err != nil {
		switch {
		case errors.Is(err, customers.ErrCustomerNotFound):
			h.logger.Warn("PATCH /customers/{id} - Customer not found: customer_id=%s", customerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, customers.ErrCustomerAlreadyExists):
			h.logger.Warn("PATCH /customers/{id} - Email already taken: customer_id=%s", customerID)
			handlers.RespondConflict(w, msgEmailTaken)

		case errors.Is(err, customers.ErrInvalidInput):
			h.logger.Warn("PATCH /customers/{id} - Invalid input: customer_id=%s, error=%v", customerID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /customers/{id} - Failed to update customer: customer_id=%s, error=%v", customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /customers/{id} - Customer updated successfully: customer_id=%s", customerID)
	handlers.RespondJSON(w, http.StatusOK, customer)
}
