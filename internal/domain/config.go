package domain

// Hall holds the venue details printed on invoices and emails
type Hall struct {
	Name     string
	Address  string
	Phone    string
	Email    string
	Capacity int // 0 = unlimited
}

// HasCapacityLimit returns true if the guest count is limited
func (h *Hall) HasCapacityLimit() bool {
	return h.Capacity > 0
}

// SlotSchedule describes the operating day the slot catalog is generated from
type SlotSchedule struct {
	StartHour       int
	EndHour         int
	BlockHours      int
	StandardRate    int64
	EveningRate     int64
	EveningFromHour int // slots starting at or after this hour use EveningRate
}

// IsEveningHour returns true if a slot starting at hour is priced at the evening rate
func (s *SlotSchedule) IsEveningHour(hour int) bool {
	return hour >= s.EveningFromHour
}

// RateFor returns the price of a slot starting at hour
func (s *SlotSchedule) RateFor(hour int) int64 {
	if s.IsEveningHour(hour) {
		return s.EveningRate
	}
	return s.StandardRate
}
