package invoice

import (
	"fmt"
	"sync"
	"time"
)

// MemoryNumberStore выдает номера вида INV-YYYYMM-NNNN
// Последовательность своя для каждого месяца; номер закрепляется за бронированием
type MemoryNumberStore struct {
	mu        sync.Mutex
	byBooking map[string]string
	sequence  map[string]int // "YYYYMM" -> последний выданный номер
}

// NewMemoryNumberStore создает пустое хранилище номеров
func NewMemoryNumberStore() *MemoryNumberStore {
	return &MemoryNumberStore{
		byBooking: make(map[string]string),
		sequence:  make(map[string]int),
	}
}

// Assign возвращает закрепленный номер или выдает следующий в месяце issuedAt
func (s *MemoryNumberStore) Assign(bookingID string, issuedAt time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if number, ok := s.byBooking[bookingID]; ok {
		return number
	}

	period := issuedAt.Format("200601")
	s.sequence[period]++
	number := fmt.Sprintf("INV-%s-%04d", period, s.sequence[period])

	s.byBooking[bookingID] = number
	return number
}
