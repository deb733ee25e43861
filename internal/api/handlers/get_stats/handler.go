package get_stats

import (
	"net/http"

	"github.com/m04kA/HallBookingService/internal/api/handlers"
)

type Handler struct {
	service ReportsService
	logger  Logger
}

func NewHandler(service ReportsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Dashboard(r.Context())
	if err != nil {
		h.logger.Error("GET /stats - Failed to compute dashboard stats: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /stats - Stats computed successfully: bookings=%d, revenue=%d",
		stats.TotalBookings, stats.TotalRevenue)
	handlers.RespondJSON(w, http.StatusOK, stats)
}
