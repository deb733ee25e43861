package record_payment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/HallBookingService/internal/domain"
	"github.com/m04kA/HallBookingService/internal/infra/storage/registry"
	"github.com/m04kA/HallBookingService/pkg/validate"
)

// UUIDGenerator генерирует идентификаторы платежей на основе UUID v4
type UUIDGenerator struct{}

// NewPaymentID возвращает идентификатор платежа
func (UUIDGenerator) NewPaymentID() string {
	return "pay-" + uuid.NewString()
}

// UseCase use case для записи платежа по бронированию
type UseCase struct {
	bookingRepo  BookingRepository
	metrics      Metrics
	ids          IDGenerator
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, metrics Metrics, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		metrics:      metrics,
		ids:          UUIDGenerator{},
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute записывает платеж и пересчитывает оплаченную сумму и статус оплаты бронирования
// В оплаченную сумму входят только успешные платежи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	req.Type = strings.ToLower(strings.TrimSpace(req.Type))
	req.Method = strings.ToLower(strings.TrimSpace(req.Method))
	req.Status = strings.ToLower(strings.TrimSpace(req.Status))
	if req.Status == "" {
		req.Status = string(domain.PaymentSuccess)
	}

	uc.logger.Info("RecordPayment: booking id=%s, amount=%d, type=%s, status=%s",
		req.BookingID, req.Amount, req.Type, req.Status)

	// 1. Валидация входных данных
	fields, err := validate.Struct(req)
	if err != nil || len(fields) > 0 {
		uc.logger.Warn("RecordPayment: validation failed: %v %v", fields, err)
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, describe(fields, err))
	}

	payment := &domain.Payment{
		ID:            uc.ids.NewPaymentID(),
		BookingID:     req.BookingID,
		Amount:        req.Amount,
		Type:          domain.PaymentType(req.Type),
		Method:        domain.PaymentMethod(req.Method),
		Status:        domain.PaymentRecordStatus(req.Status),
		TransactionID: req.TransactionID,
		PaidAt:        uc.timeProvider.Now(),
	}

	var result *domain.Booking

	// 2. Проверка бронирования и запись платежа
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetBooking(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, registry.ErrBookingNotFound) {
				uc.logger.Warn("RecordPayment: booking id=%s not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("RecordPayment: failed to get booking id=%s: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if booking.IsCancelled() {
			uc.logger.Warn("RecordPayment: booking id=%s is cancelled", req.BookingID)
			return ErrBookingCancelled
		}

		updated, err := uc.bookingRepo.AddPayment(txCtx, payment)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrPaidExceedsTotal):
				uc.logger.Warn("RecordPayment: amount %d exceeds balance %d for booking id=%s",
					req.Amount, booking.Balance(), req.BookingID)
				return fmt.Errorf("%w: balance is %d", ErrExceedsBalance, booking.Balance())
			case errors.Is(err, registry.ErrPaymentAlreadyExists):
				return ErrPaymentAlreadyExists
			case errors.Is(err, registry.ErrBookingNotFound):
				return ErrBookingNotFound
			default:
				uc.logger.Error("RecordPayment: failed to add payment: %v", err)
				return fmt.Errorf("%w: failed to add payment: %v", ErrInternal, err)
			}
		}

		result = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.IncPaymentRecorded(string(payment.Status))
	uc.logger.Info("RecordPayment: payment id=%s recorded, booking id=%s paid=%d, paymentStatus=%s",
		payment.ID, result.ID, result.PaidAmount, result.PaymentStatus)

	return &Response{Payment: payment, Booking: result}, nil
}

func describe(fields map[string]string, err error) string {
	if err != nil {
		return err.Error()
	}

	parts := make([]string, 0, len(fields))
	for _, name := range []string{"amount", "type", "method", "status", "transactionId"} {
		if msg, ok := fields[name]; ok {
			parts = append(parts, name+" "+msg)
		}
	}
	return strings.Join(parts, "; ")
}
