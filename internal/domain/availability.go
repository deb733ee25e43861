package domain

import "time"

// IsSlotAvailable reports whether no active booking holds the slot on that date.
// Cancelled bookings never block a slot.
func IsSlotAvailable(date time.Time, slotLabel string, bookings []*Booking) bool {
	return FindOccupant(date, slotLabel, bookings) == nil
}

// FindOccupant returns the active booking holding the slot on that date, or nil
func FindOccupant(date time.Time, slotLabel string, bookings []*Booking) *Booking {
	for _, b := range bookings {
		if b.IsActive() && b.TimeSlot == slotLabel && SameDate(b.EventDate, date) {
			return b
		}
	}
	return nil
}
