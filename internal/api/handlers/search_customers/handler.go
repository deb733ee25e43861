package search_customers

import (
	"net/http"

	"github.com/m04kA/HallBookingService/internal/api/handlers"
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

// Handle GET /api/v1/customers
// Query params: q (optional) - подстрока имени, email или телефона
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	result, err := h.service.Search(r.Context(), query)
	if err != nil {
		h.logger.Error("GET /customers - Failed to search customers: q=%q, error=%v", query, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /customers - Customers retrieved successfully: q=%q, count=%d", query, len(result.Customers))
	handlers.RespondJSON(w, http.StatusOK, result)
}
