package get_hall

import "github.com/m04kA/HallBookingService/internal/domain"

// SlotResponse слот каталога
type SlotResponse struct {
	ID        string `json:"id"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Label     string `json:"label"`
	Price     int64  `json:"price"`
}

// HallResponse HTTP response model
type HallResponse struct {
	Name           string         `json:"name"`
	Address        string         `json:"address"`
	Phone          string         `json:"phone"`
	Email          string         `json:"email"`
	Capacity       int            `json:"capacity"` // 0 - без ограничения
	PerGuestRate   int64          `json:"perGuestRate"`
	Slots          []SlotResponse `json:"slots"`
	EventTypes     []string       `json:"eventTypes"`
	PaymentMethods []string       `json:"paymentMethods"`
}

func toResponse(hall domain.Hall, slots []domain.TimeSlot) *HallResponse {
	resp := &HallResponse{
		Name:           hall.Name,
		Address:        hall.Address,
		Phone:          hall.Phone,
		Email:          hall.Email,
		Capacity:       hall.Capacity,
		PerGuestRate:   domain.PerGuestRate,
		Slots:          make([]SlotResponse, 0, len(slots)),
		EventTypes:     append([]string(nil), domain.EventTypes...),
		PaymentMethods: make([]string, 0, len(domain.PaymentMethods)),
	}

	for _, s := range slots {
		resp.Slots = append(resp.Slots, SlotResponse{
			ID:        s.ID,
			StartTime: s.Start.String(),
			EndTime:   s.End.String(),
			Label:     s.Label,
			Price:     s.Price,
		})
	}
	for _, m := range domain.PaymentMethods {
		resp.PaymentMethods = append(resp.PaymentMethods, string(m))
	}

	return resp
}
