package registry

import "time"

// Clock источник текущего времени для отметок created/updated
type Clock interface {
	Now() time.Time
}

// SystemClock реальные часы для production
type SystemClock struct{}

// Now возвращает текущее время в UTC
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
