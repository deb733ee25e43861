package invoice

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/HallBookingService/internal/infra/storage/registry"
)

// Service сервис счетов
type Service struct {
	repo         BookingRepository
	composer     *Composer
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса счетов
func NewService(repo BookingRepository, composer *Composer, logger Logger) *Service {
	return &Service{
		repo:         repo,
		composer:     composer,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetInvoice собирает счет по ID бронирования
func (s *Service) GetInvoice(ctx context.Context, bookingID string) (*Invoice, error) {
	s.logger.Info("GetInvoice: booking id=%s", bookingID)

	booking, err := s.repo.GetBooking(ctx, bookingID)
	if err != nil {
		if errors.Is(err, registry.ErrBookingNotFound) {
			s.logger.Warn("GetInvoice: booking id=%s not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetInvoice: repository error for booking id=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: GetInvoice - repository error: %v", ErrInternal, err)
	}

	payments, err := s.repo.GetPaymentsByBooking(ctx, bookingID)
	if err != nil {
		s.logger.Error("GetInvoice: failed to get payments for booking id=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: GetInvoice - payments error: %v", ErrInternal, err)
	}

	inv, err := s.composer.Compose(booking, payments, s.timeProvider.Now())
	if err != nil {
		s.logger.Error("GetInvoice: failed to compose invoice for booking id=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: GetInvoice - compose error: %v", ErrInternal, err)
	}

	s.logger.Info("GetInvoice: composed invoice %s for booking id=%s", inv.Number, bookingID)
	return inv, nil
}

// InvoiceNumber возвращает номер счета бронирования (выдает при первом обращении)
func (s *Service) InvoiceNumber(bookingID string) string {
	return s.composer.numbers.Assign(bookingID, s.timeProvider.Now())
}
