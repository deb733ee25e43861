package get_hall

import (
	"net/http"

	"github.com/m04kA/HallBookingService/internal/api/handlers"
	"github.com/m04kA/HallBookingService/internal/domain"
)

type Handler struct {
	hall    domain.Hall
	catalog SlotCatalog
	logger  Logger
}

func NewHandler(hall domain.Hall, catalog SlotCatalog, logger Logger) *Handler {
	return &Handler{
		hall:    hall,
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/hall
// Реквизиты зала, каталог слотов и справочники для формы бронирования
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slots := h.catalog.Slots()

	h.logger.Info("GET /hall - Hall details retrieved: slots_count=%d", len(slots))
	handlers.RespondJSON(w, http.StatusOK, toResponse(h.hall, slots))
}
