package reports

import (
	"context"
	"fmt"
	"sort"

	"github.com/m04kA/HallBookingService/internal/domain"
)

const monthKeyFormat = "2006-01"

// Service сервис статистики
type Service struct {
	repo         Repository
	logger       Logger
	timeProvider TimeProvider
}

// NewService создает новый экземпляр сервиса статистики
func NewService(repo Repository, logger Logger) *Service {
	return &Service{
		repo:         repo,
		logger:       logger,
		timeProvider: &RealTimeProvider{},
	}
}

// Dashboard вычисляет сводную статистику по текущему состоянию реестра
func (s *Service) Dashboard(ctx context.Context) (*DashboardStats, error) {
	s.logger.Info("Dashboard: computing stats")

	// 1. Все бронирования, включая отменённые
	bookings, err := s.repo.ListBookings(ctx, domain.BookingsFilter{IncludeCancelled: true})
	if err != nil {
		s.logger.Error("Dashboard: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: Dashboard - repository error: %v", ErrInternal, err)
	}

	// 2. Все платежи для помесячной выручки и разбивки по способам оплаты
	payments, err := s.repo.ListPayments(ctx)
	if err != nil {
		s.logger.Error("Dashboard: failed to list payments: %v", err)
		return nil, fmt.Errorf("%w: Dashboard - repository error: %v", ErrInternal, err)
	}

	today := domain.NormalizeDate(s.timeProvider.Now())
	stats := &DashboardStats{
		TotalBookings:          len(bookings),
		MonthlyRevenue:         monthlyRevenue(payments),
		BookingsByEventType:    bookingsByEventType(bookings),
		RevenueByPaymentMethod: revenueByMethod(payments),
	}

	for _, b := range bookings {
		if b.PaymentStatus != domain.PaymentStatusPending {
			stats.TotalRevenue += b.PaidAmount
		}
		if b.Status == domain.StatusConfirmed && !b.EventDate.Before(today) {
			stats.UpcomingBookings++
		}
		if b.PaymentStatus == domain.PaymentStatusPending || b.PaymentStatus == domain.PaymentStatusAdvance {
			stats.PendingPayments++
		}
	}

	s.logger.Info("Dashboard: bookings=%d, revenue=%d, pendingPayments=%d",
		stats.TotalBookings, stats.TotalRevenue, stats.PendingPayments)
	return stats, nil
}

// monthlyRevenue суммирует успешные платежи по месяцам в хронологическом порядке
func monthlyRevenue(payments []*domain.Payment) []MonthRevenue {
	byMonth := make(map[string]*MonthRevenue)
	for _, p := range payments {
		if !p.IsSuccessful() {
			continue
		}
		key := p.PaidAt.Format(monthKeyFormat)
		month, ok := byMonth[key]
		if !ok {
			month = &MonthRevenue{Month: key, Label: p.PaidAt.Format("Jan 2006")}
			byMonth[key] = month
		}
		month.Revenue += p.Amount
	}

	result := make([]MonthRevenue, 0, len(byMonth))
	for _, m := range byMonth {
		result = append(result, *m)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Month < result[j].Month
	})
	return result
}

// bookingsByEventType считает бронирования по типу мероприятия, самые частые первыми
func bookingsByEventType(bookings []*domain.Booking) []EventTypeStat {
	counts := make(map[string]int)
	for _, b := range bookings {
		counts[b.EventType]++
	}

	result := make([]EventTypeStat, 0, len(counts))
	for eventType, count := range counts {
		result = append(result, EventTypeStat{Type: eventType, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Type < result[j].Type
	})
	return result
}

// revenueByMethod суммирует успешные платежи по каждому способу оплаты
func revenueByMethod(payments []*domain.Payment) []MethodRevenue {
	totals := make(map[domain.PaymentMethod]int64, len(domain.PaymentMethods))
	for _, p := range payments {
		if p.IsSuccessful() {
			totals[p.Method] += p.Amount
		}
	}

	result := make([]MethodRevenue, 0, len(domain.PaymentMethods))
	for _, method := range domain.PaymentMethods {
		result = append(result, MethodRevenue{Method: string(method), Amount: totals[method]})
	}
	return result
}
