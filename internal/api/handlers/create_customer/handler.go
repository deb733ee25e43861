package create_customer

import (
	"errors"
	"net/http"

	"github.com/m04kA/HallBookingService/internal/api/handlers"
	"github.com/m04kA/HallBookingService/internal/service/customers"
	"github.com/m04kA/HallBookingService/internal/service/customers/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные клиента"
	msgAlreadyExists      = "клиент с таким email уже существует"
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

// Handle POST /api/v1/customers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCustomerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /customers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	customer, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, customers.ErrInvalidInput):
			h.logger.Warn("POST /customers - Invalid input: email=%s, error=%v", req.Email, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, customers.ErrCustomerAlreadyExists):
			h.logger.Warn("POST /customers - Customer already exists: email=%s", req.Email)
			handlers.RespondConflict(w, msgAlreadyExists)

		default:
			h.logger.Error("POST /customers - Failed to create customer: email=%s, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /customers - Customer created successfully: customer_id=%s", customer.ID)
	handlers.RespondJSON(w, http.StatusCreated, customer)
}
