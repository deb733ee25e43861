package catalog

import (
	"errors"
	"fmt"

	"github.com/m04kA/HallBookingService/internal/domain"
	"github.com/m04kA/HallBookingService/pkg/types"
)

// ErrInvalidSchedule возвращается при некорректном расписании
var ErrInvalidSchedule = errors.New("catalog: invalid slot schedule")

// Catalog фиксированный набор временных слотов операционного дня
// Каталог неизменяем после создания и безопасен для конкурентного чтения
type Catalog struct {
	slots   []domain.TimeSlot
	byLabel map[string]int
}

// New строит каталог по расписанию
func New(schedule domain.SlotSchedule) (*Catalog, error) {
	slots, err := GenerateSlots(schedule)
	if err != nil {
		return nil, err
	}

	byLabel := make(map[string]int, len(slots))
	for i, slot := range slots {
		byLabel[slot.Label] = i
	}

	return &Catalog{
		slots:   slots,
		byLabel: byLabel,
	}, nil
}

// Slots возвращает копию упорядоченного списка слотов
func (c *Catalog) Slots() []domain.TimeSlot {
	out := make([]domain.TimeSlot, len(c.slots))
	copy(out, c.slots)
	return out
}

// FindByLabel находит слот по отображаемой метке
func (c *Catalog) FindByLabel(label string) (domain.TimeSlot, bool) {
	i, ok := c.byLabel[label]
	if !ok {
		return domain.TimeSlot{}, false
	}
	return c.slots[i], true
}

// Labels возвращает метки всех слотов в порядке каталога
func (c *Catalog) Labels() []string {
	labels := make([]string, len(c.slots))
	for i, slot := range c.slots {
		labels[i] = slot.Label
	}
	return labels
}

// GenerateSlots генерирует слоты с начала до конца дня блоками фиксированной длины
// Последний блок обрезается по концу дня, если диапазон не делится нацело
// Слоты, начинающиеся с EveningFromHour и позже, тарифицируются по вечерней ставке
func GenerateSlots(schedule domain.SlotSchedule) ([]domain.TimeSlot, error) {
	if err := validateSchedule(schedule); err != nil {
		return nil, err
	}

	slots := make([]domain.TimeSlot, 0, (schedule.EndHour-schedule.StartHour)/schedule.BlockHours+1)

	for hour := schedule.StartHour; hour < schedule.EndHour; hour += schedule.BlockHours {
		endHour := hour + schedule.BlockHours
		if endHour > schedule.EndHour {
			endHour = schedule.EndHour
		}

		start, err := types.NewTimeStringFromMinutes(hour * 60)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
		}
		end, err := types.NewTimeStringFromMinutes(endHour * 60)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
		}

		slots = append(slots, domain.TimeSlot{
			ID:    fmt.Sprintf("slot-%d", hour),
			Start: start,
			End:   end,
			Label: FormatLabel(start, end),
			Price: schedule.RateFor(hour),
		})
	}

	return slots, nil
}

// FormatLabel формирует метку слота вида "09:00 - 13:00"
func FormatLabel(start, end types.TimeString) string {
	return fmt.Sprintf("%s - %s", start, end)
}

// validateSchedule проверяет корректность расписания
func validateSchedule(s domain.SlotSchedule) error {
	if s.StartHour < 0 || s.StartHour > 23 {
		return fmt.Errorf("%w: start hour %d out of range", ErrInvalidSchedule, s.StartHour)
	}
	if s.EndHour <= s.StartHour || s.EndHour > 24 {
		return fmt.Errorf("%w: end hour %d must be after start hour %d and not after 24", ErrInvalidSchedule, s.EndHour, s.StartHour)
	}
	if s.BlockHours <= 0 {
		return fmt.Errorf("%w: block size must be positive", ErrInvalidSchedule)
	}
	if s.StandardRate < 0 || s.EveningRate < 0 {
		return fmt.Errorf("%w: rates must not be negative", ErrInvalidSchedule)
	}
	return nil
}
