package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/HallBookingService/internal/domain"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	catalog      SlotCatalog
	customers    CustomerRegistrar
	invoices     InvoiceNumberer
	notifier     Notifier
	metrics      Metrics
	ids          IDGenerator
	txManager    TransactionManager
	hall         domain.Hall
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalog SlotCatalog,
	customers CustomerRegistrar,
	invoices InvoiceNumberer,
	notifier Notifier,
	metrics Metrics,
	txManager TransactionManager,
	hall domain.Hall,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		catalog:      catalog,
		customers:    customers,
		invoices:     invoices,
		notifier:     notifier,
		metrics:      metrics,
		ids:          UUIDGenerator{},
		txManager:    txManager,
		hall:         hall,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка слота и запись выполняются атомарно; отправка подтверждения идет после записи
// и при неудаче не отменяет бронирование
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	normalizeRequest(req)
	uc.logger.Info("CreateBooking: email=%s, date=%s, slot=%s, guests=%d",
		req.CustomerEmail, req.Date, req.TimeSlot, req.GuestCount)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не может быть в прошлом
	now := uc.timeProvider.Now()
	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return nil, &ValidationError{Fields: map[string]string{"date": "must be a date in YYYY-MM-DD format"}}
	}
	if date.Before(domain.NormalizeDate(now)) {
		uc.logger.Warn("CreateBooking: date %s is in the past", req.Date)
		return nil, ErrInvalidDate
	}

	// 3. Слот должен быть в каталоге
	slot, ok := uc.catalog.FindByLabel(req.TimeSlot)
	if !ok {
		uc.logger.Warn("CreateBooking: unknown time slot %q", req.TimeSlot)
		return nil, ErrInvalidTimeSlot
	}

	// 4. Вместимость зала
	if uc.hall.HasCapacityLimit() && req.GuestCount > uc.hall.Capacity {
		uc.logger.Warn("CreateBooking: guest count %d exceeds capacity %d", req.GuestCount, uc.hall.Capacity)
		return nil, fmt.Errorf("%w: %d > %d", ErrCapacityExceeded, req.GuestCount, uc.hall.Capacity)
	}

	// 5. Сумма: указанная или рассчитанная по слоту и числу гостей
	total := slot.Price + int64(req.GuestCount)*domain.PerGuestRate
	if req.TotalAmount != nil {
		total = *req.TotalAmount
	}
	if req.AdvanceAmount > total {
		uc.logger.Warn("CreateBooking: advance %d exceeds total %d", req.AdvanceAmount, total)
		return nil, &ValidationError{Fields: map[string]string{
			"advanceAmount": msgAdvanceExceedsTotal,
		}}
	}

	booking := &domain.Booking{
		ID:            uc.ids.NewBookingID(),
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		EventDate:     date,
		TimeSlot:      slot.Label,
		EventType:     req.EventType,
		GuestCount:    req.GuestCount,
		TotalAmount:   total,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
		Status:        domain.InitialStatus(req.AdvanceAmount),
		Notes:         req.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	var result *domain.Booking

	// 6. Проверка занятости, запись бронирования и аванса
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		sameDay, err := uc.bookingRepo.GetBookingsByDate(txCtx, date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		if occupant := domain.FindOccupant(date, slot.Label, sameDay); occupant != nil {
			uc.logger.Warn("CreateBooking: slot %s on %s is taken by booking id=%s", slot.Label, req.Date, occupant.ID)
			return ErrSlotNotAvailable
		}

		created, err := uc.bookingRepo.AddBooking(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to add booking: %v", err)
			return fmt.Errorf("%w: failed to add booking: %v", ErrInternal, err)
		}

		if req.AdvanceAmount > 0 {
			created, err = uc.bookingRepo.AddPayment(txCtx, &domain.Payment{
				ID:        uc.ids.NewPaymentID(),
				BookingID: created.ID,
				Amount:    req.AdvanceAmount,
				Type:      advancePaymentType(req.AdvanceAmount, total),
				Method:    booking.PaymentMethod,
				Status:    domain.PaymentSuccess,
				PaidAt:    now,
			})
			if err != nil {
				uc.logger.Error("CreateBooking: failed to record advance for booking id=%s: %v", booking.ID, err)
				return fmt.Errorf("%w: failed to record advance: %v", ErrInternal, err)
			}
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s, status=%s, paymentStatus=%s",
		result.ID, result.Status, result.PaymentStatus)
	uc.metrics.IncBookingCreated(string(result.Status))

	// 7. Клиент заводится по контактам бронирования, ошибка не отменяет бронирование
	if _, err := uc.customers.Ensure(ctx, result.CustomerName, result.CustomerEmail, result.CustomerPhone); err != nil {
		uc.logger.Error("CreateBooking: failed to register customer email=%s: %v", result.CustomerEmail, err)
	}

	// 8. Подтверждение
	resp := &Response{
		Booking:       result,
		InvoiceNumber: uc.invoices.InvoiceNumber(result.ID),
	}

	report, err := uc.notifier.SendConfirmation(ctx, result, resp.InvoiceNumber)
	if err != nil {
		uc.logger.Error("CreateBooking: confirmation for booking id=%s not sent: %v", result.ID, err)
	} else {
		resp.Notification = report
	}

	return resp, nil
}

// advancePaymentType тип платежа, внесенного при создании бронирования
func advancePaymentType(advance, total int64) domain.PaymentType {
	if advance >= total {
		return domain.PaymentTypeFull
	}
	return domain.PaymentTypeAdvance
}

// IsValidationError возвращает ошибки по полям, если err - ошибка валидации
func IsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}
