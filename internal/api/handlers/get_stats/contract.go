package get_stats

import (
	"context"

	"github.com/m04kA/HallBookingService/internal/service/reports"
)

type ReportsService interface {
	Dashboard(ctx context.Context) (*reports.DashboardStats, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
