package reports

// DashboardStats сводная статистика для главной страницы
type DashboardStats struct {
	TotalRevenue           int64           `json:"totalRevenue"`
	TotalBookings          int             `json:"totalBookings"`
	UpcomingBookings       int             `json:"upcomingBookings"`
	PendingPayments        int             `json:"pendingPayments"`
	MonthlyRevenue         []MonthRevenue  `json:"monthlyRevenue"`
	BookingsByEventType    []EventTypeStat `json:"bookingsByEventType"`
	RevenueByPaymentMethod []MethodRevenue `json:"revenueByPaymentMethod"`
}

// MonthRevenue выручка за календарный месяц
type MonthRevenue struct {
	Month   string `json:"month"` // "2026-10"
	Label   string `json:"label"` // "Oct 2026"
	Revenue int64  `json:"revenue"`
}

// EventTypeStat количество бронирований по типу мероприятия
type EventTypeStat struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// MethodRevenue выручка по способу оплаты
type MethodRevenue struct {
	Method string `json:"method"`
	Amount int64  `json:"amount"`
}
