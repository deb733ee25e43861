package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/HallBookingService/internal/domain"
)

// UseCase use case для получения слотов с занятостью на дату
type UseCase struct {
	bookingRepo  BookingRepository
	catalog      SlotCatalog
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, catalog SlotCatalog, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		catalog:      catalog,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute возвращает все слоты каталога на дату в порядке каталога
// Слот занят, если на ту же дату есть неотмененное бронирование с той же меткой
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.Date.IsZero() {
		uc.logger.Warn("GetAvailableSlots: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	date := domain.NormalizeDate(req.Date)
	uc.logger.Info("GetAvailableSlots: date=%s", date.Format(domain.DateFormat))

	// 2. Бронирования на дату
	bookings, err := uc.bookingRepo.GetBookingsByDate(ctx, date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 3. Отмечаем занятость каждого слота
	catalogSlots := uc.catalog.Slots()
	slots := make([]domain.AvailableSlot, 0, len(catalogSlots))
	free := 0
	for _, slot := range catalogSlots {
		available := domain.AvailableSlot{TimeSlot: slot, Available: true}
		if occupant := domain.FindOccupant(date, slot.Label, bookings); occupant != nil {
			id := occupant.ID
			available.Available = false
			available.BookingID = &id
		} else {
			free++
		}
		slots = append(slots, available)
	}

	uc.logger.Info("GetAvailableSlots: date=%s, %d of %d slots free",
		date.Format(domain.DateFormat), free, len(slots))

	return &Response{
		Date:  date,
		Past:  date.Before(domain.NormalizeDate(uc.timeProvider.Now())),
		Slots: slots,
	}, nil
}
