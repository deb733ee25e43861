package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/HallBookingService/internal/domain"
	"github.com/m04kA/HallBookingService/internal/infra/storage/registry"
	"github.com/m04kA/HallBookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	repo      BookingRepository
	catalog   SlotCatalog
	txManager TransactionManager
	customers CustomerRegistry
	hall      domain.Hall
	logger    Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	repo BookingRepository,
	catalog SlotCatalog,
	txManager TransactionManager,
	customers CustomerRegistry,
	hall domain.Hall,
	logger Logger,
) *Service {
	return &Service{
		repo:      repo,
		catalog:   catalog,
		txManager: txManager,
		customers: customers,
		hall:      hall,
		logger:    logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	booking, err := s.getBooking(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%s", id)
	return models.FromDomainBooking(booking), nil
}

// List получает бронирования с фильтрацией по дате, периоду, статусам, клиенту и строке поиска
// Отменённые бронирования включаются только по запросу или при фильтре status=cancelled
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	logMsg := "List: fetching bookings"
	if req.Date != nil {
		logMsg += fmt.Sprintf(", date=%s", req.Date.Format(domain.DateFormat))
	}
	if req.From != nil || req.To != nil {
		logMsg += fmt.Sprintf(", period=%s to %s", formatOptionalDate(req.From), formatOptionalDate(req.To))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.PaymentStatus != nil {
		logMsg += fmt.Sprintf(", paymentStatus=%s", *req.PaymentStatus)
	}
	if req.CustomerEmail != nil {
		logMsg += fmt.Sprintf(", customer=%s", *req.CustomerEmail)
	}
	if req.Query != "" {
		logMsg += fmt.Sprintf(", q=%q", req.Query)
	}
	if req.IncludeCancelled {
		logMsg += ", includeCancelled=true"
	}
	s.logger.Info(logMsg)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.repo.ListBookings(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Update частично обновляет бронирование
// При смене даты или слота заново проверяет занятость; само бронирование слот не блокирует
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Update: updating booking id=%s", id)

	// 1. Конвертируем и валидируем изменения
	patch, err := req.ToDomainPatch()
	if err != nil {
		s.logger.Warn("Update: invalid request for booking id=%s: %v", id, err)
		if errors.Is(err, models.ErrInvalidStatus) {
			return nil, ErrInvalidStatus
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if patch.IsEmpty() {
		s.logger.Warn("Update: empty patch for booking id=%s", id)
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}
	if err := s.validatePatch(patch); err != nil {
		s.logger.Warn("Update: validation failed for booking id=%s: %v", id, err)
		return nil, err
	}

	var result *domain.Booking

	// 2. Проверка слота и запись выполняются атомарно относительно других бронирований
	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		current, err := s.getBooking(txCtx, "Update", id)
		if err != nil {
			return err
		}

		if patch.ChangesSlot() && current.IsActive() {
			date := current.EventDate
			if patch.EventDate != nil {
				date = domain.NormalizeDate(*patch.EventDate)
			}
			slot := current.TimeSlot
			if patch.TimeSlot != nil {
				slot = *patch.TimeSlot
			}

			sameDay, err := s.repo.GetBookingsByDate(txCtx, date)
			if err != nil {
				s.logger.Error("Update: failed to get bookings on %s: %v", date.Format(domain.DateFormat), err)
				return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
			}
			if occupant := domain.FindOccupant(date, slot, sameDay); occupant != nil && occupant.ID != id {
				s.logger.Warn("Update: slot %s on %s is taken by booking id=%s",
					slot, date.Format(domain.DateFormat), occupant.ID)
				return ErrSlotNotAvailable
			}
		}

		updated, err := s.repo.UpdateBooking(txCtx, id, patch)
		if err != nil {
			return s.mapUpdateError("Update", id, err)
		}
		result = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 3. Новый email клиента заводится так же, как при создании; ошибка не отменяет обновление
	if patch.CustomerEmail != nil && s.customers != nil {
		if _, err := s.customers.Ensure(ctx, result.CustomerName, result.CustomerEmail, result.CustomerPhone); err != nil {
			s.logger.Error("Update: failed to register customer email=%s: %v", result.CustomerEmail, err)
		}
	}

	s.logger.Info("Update: successfully updated booking id=%s", id)
	return models.FromDomainBooking(result), nil
}

// Cancel отменяет бронирование; слот освобождается, платежи сохраняются
func (s *Service) Cancel(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%s", id)

	booking, err := s.getBooking(ctx, "Cancel", id)
	if err != nil {
		return nil, err
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%s cannot be cancelled, status=%s", id, booking.Status)
		return nil, ErrCannotCancel
	}

	cancelled := domain.StatusCancelled
	updated, err := s.repo.UpdateBooking(ctx, id, domain.BookingPatch{Status: &cancelled})
	if err != nil {
		return nil, s.mapUpdateError("Cancel", id, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%s", id)
	return models.FromDomainBooking(updated), nil
}

// Delete удаляет бронирование из реестра
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting booking id=%s", id)

	if err := s.repo.DeleteBooking(ctx, id); err != nil {
		if errors.Is(err, registry.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%s not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%s", id)
	return nil
}

// GetPayments получает платежи бронирования в порядке добавления
func (s *Service) GetPayments(ctx context.Context, id string) (*models.PaymentListResponse, error) {
	s.logger.Info("GetPayments: fetching payments for booking id=%s", id)

	if _, err := s.getBooking(ctx, "GetPayments", id); err != nil {
		return nil, err
	}

	payments, err := s.repo.GetPaymentsByBooking(ctx, id)
	if err != nil {
		s.logger.Error("GetPayments: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetPayments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetPayments: successfully fetched %d payments for booking id=%s", len(payments), id)
	return models.FromDomainPaymentList(payments), nil
}

// Вспомогательные методы

func (s *Service) getBooking(ctx context.Context, op, id string) (*domain.Booking, error) {
	booking, err := s.repo.GetBooking(ctx, id)
	if err != nil {
		if errors.Is(err, registry.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%s not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

func (s *Service) mapUpdateError(op, id string, err error) error {
	switch {
	case errors.Is(err, registry.ErrBookingNotFound):
		s.logger.Warn("%s: booking id=%s not found", op, id)
		return ErrBookingNotFound
	case errors.Is(err, domain.ErrInvalidTransition):
		s.logger.Warn("%s: invalid status transition for booking id=%s", op, id)
		return ErrInvalidStatus
	case errors.Is(err, domain.ErrPaidExceedsTotal), errors.Is(err, domain.ErrNegativeAmount):
		s.logger.Warn("%s: invalid amount for booking id=%s: %v", op, id, err)
		return fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	default:
		s.logger.Error("%s: repository error for booking id=%s: %v", op, id, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
}

// validatePatch проверяет изменяемые поля по тем же правилам, что и при создании
func (s *Service) validatePatch(p domain.BookingPatch) error {
	if p.CustomerName != nil {
		name := strings.TrimSpace(*p.CustomerName)
		if len(name) < domain.MinCustomerName || len(name) > domain.MaxNameLength {
			return fmt.Errorf("%w: customerName length must be %d..%d",
				ErrInvalidInput, domain.MinCustomerName, domain.MaxNameLength)
		}
	}
	if p.CustomerEmail != nil && !domain.IsValidEmail(*p.CustomerEmail) {
		return fmt.Errorf("%w: invalid customerEmail", ErrInvalidInput)
	}
	if p.CustomerPhone != nil && !domain.IsValidPhone(*p.CustomerPhone) {
		return fmt.Errorf("%w: invalid customerPhone", ErrInvalidInput)
	}
	if p.TimeSlot != nil {
		if _, ok := s.catalog.FindByLabel(*p.TimeSlot); !ok {
			return fmt.Errorf("%w: %q", ErrInvalidTimeSlot, *p.TimeSlot)
		}
	}
	if p.EventType != nil && !domain.IsKnownEventType(*p.EventType) {
		return fmt.Errorf("%w: unknown eventType %q", ErrInvalidInput, *p.EventType)
	}
	if p.GuestCount != nil {
		if *p.GuestCount <= 0 {
			return fmt.Errorf("%w: guestCount must be positive", ErrInvalidInput)
		}
		if s.hall.HasCapacityLimit() && *p.GuestCount > s.hall.Capacity {
			return fmt.Errorf("%w: %d > %d", ErrCapacityExceeded, *p.GuestCount, s.hall.Capacity)
		}
	}
	if p.TotalAmount != nil && *p.TotalAmount < 0 {
		return fmt.Errorf("%w: totalAmount must not be negative", ErrInvalidAmount)
	}
	if p.Notes != nil && len(*p.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes longer than %d", ErrInvalidInput, domain.MaxNotesLength)
	}
	return nil
}

func formatOptionalDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(domain.DateFormat)
}
