package domain

import "github.com/m04kA/HallBookingService/pkg/types"

// TimeSlot is a bookable block of the operating day. Slots are derived from the
// schedule and never stored; availability is computed against bookings.
type TimeSlot struct {
	ID    string
	Start types.TimeString
	End   types.TimeString
	Label string
	Price int64
}

// AvailableSlot is a catalog slot annotated with availability for a given date
type AvailableSlot struct {
	TimeSlot
	Available bool
	BookingID *string // the occupying booking, if any
}
