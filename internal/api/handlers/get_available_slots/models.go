package get_available_slots

import (
	"github.com/m04kA/HallBookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/HallBookingService/internal/usecase/get_available_slots"
)

// SlotResponse слот каталога с отметкой занятости
type SlotResponse struct {
	ID        string  `json:"id"`
	StartTime string  `json:"startTime"` // "09:00"
	EndTime   string  `json:"endTime"`   // "13:00"
	Label     string  `json:"label"`     // "09:00 - 13:00"
	Price     int64   `json:"price"`
	Available bool    `json:"available"`
	BookingID *string `json:"bookingId,omitempty"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date  string         `json:"date"`
	Past  bool           `json:"past"`
	Slots []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	result := &AvailableSlotsResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Past:  resp.Past,
		Slots: make([]SlotResponse, 0, len(resp.Slots)),
	}

	for _, slot := range resp.Slots {
		result.Slots = append(result.Slots, SlotResponse{
			ID:        slot.ID,
			StartTime: slot.Start.String(),
			EndTime:   slot.End.String(),
			Label:     slot.Label,
			Price:     slot.Price,
			Available: slot.Available,
			BookingID: slot.BookingID,
		})
	}

	return result
}
