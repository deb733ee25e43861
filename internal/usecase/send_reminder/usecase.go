package send_reminder

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/HallBookingService/internal/infra/storage/registry"
	"github.com/m04kA/HallBookingService/internal/service/notifications"
)

// Response результат отправки напоминания
type Response struct {
	BookingID string
	Balance   int64
	Message   string
	Report    *notifications.Report
}

// UseCase use case для отправки напоминания об остатке
type UseCase struct {
	bookingRepo BookingRepository
	notifier    Notifier
	composer    *notifications.Composer
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, notifier Notifier, composer *notifications.Composer, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		notifier:    notifier,
		composer:    composer,
		logger:      logger,
	}
}

// Execute отправляет напоминание по бронированию
// Сбой доставки отражается в отчете и не считается ошибкой use case
func (uc *UseCase) Execute(ctx context.Context, bookingID string) (*Response, error) {
	uc.logger.Info("SendReminder: booking id=%s", bookingID)

	booking, err := uc.bookingRepo.GetBooking(ctx, bookingID)
	if err != nil {
		if errors.Is(err, registry.ErrBookingNotFound) {
			uc.logger.Warn("SendReminder: booking id=%s not found", bookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("SendReminder: failed to get booking id=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	report, err := uc.notifier.SendReminder(ctx, booking)
	if err != nil {
		if errors.Is(err, notifications.ErrNoBalance) || errors.Is(err, notifications.ErrBookingCancelled) {
			return nil, fmt.Errorf("%w: %v", ErrNothingToRemind, err)
		}
		uc.logger.Error("SendReminder: failed for booking id=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	message, _ := uc.composer.ReminderMessage(booking)
	return &Response{
		BookingID: booking.ID,
		Balance:   booking.Balance(),
		Message:   message,
		Report:    report,
	}, nil
}
