package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HallBookingService/internal/domain"
	"github.com/m04kA/HallBookingService/pkg/types"
)

func defaultSchedule() domain.SlotSchedule {
	return domain.SlotSchedule{
		StartHour:       domain.DefaultStartHour,
		EndHour:         domain.DefaultEndHour,
		BlockHours:      domain.DefaultBlockHours,
		StandardRate:    domain.DefaultStandardRate,
		EveningRate:     domain.DefaultEveningRate,
		EveningFromHour: domain.DefaultEveningFromHour,
	}
}

func TestGenerateSlots_DefaultDay(t *testing.T) {
	slots, err := GenerateSlots(defaultSchedule())
	require.NoError(t, err)
	require.Len(t, slots, 4)

	expected := []struct {
		id, label string
		start     types.TimeString
		end       types.TimeString
		price     int64
	}{
		{"slot-9", "09:00 - 13:00", "09:00", "13:00", 1000},
		{"slot-13", "13:00 - 17:00", "13:00", "17:00", 1000},
		{"slot-17", "17:00 - 21:00", "17:00", "21:00", 1000},
		{"slot-21", "21:00 - 22:00", "21:00", "22:00", 1500},
	}

	for i, want := range expected {
		assert.Equal(t, want.id, slots[i].ID)
		assert.Equal(t, want.label, slots[i].Label)
		assert.Equal(t, want.start, slots[i].Start)
		assert.Equal(t, want.end, slots[i].End)
		assert.Equal(t, want.price, slots[i].Price, "slot %s", want.label)
	}
}

func TestGenerateSlots_Deterministic(t *testing.T) {
	first, err := GenerateSlots(defaultSchedule())
	require.NoError(t, err)
	second, err := GenerateSlots(defaultSchedule())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGenerateSlots_EvenDivision(t *testing.T) {
	schedule := defaultSchedule()
	schedule.StartHour = 10
	schedule.EndHour = 22
	schedule.BlockHours = 4

	slots, err := GenerateSlots(schedule)
	require.NoError(t, err)
	require.Len(t, slots, 3)
	assert.Equal(t, "18:00 - 22:00", slots[2].Label)
	assert.Equal(t, int64(1500), slots[2].Price)
}

func TestGenerateSlots_InvalidSchedule(t *testing.T) {
	cases := map[string]func(s *domain.SlotSchedule){
		"end before start": func(s *domain.SlotSchedule) { s.EndHour = 8 },
		"zero block":       func(s *domain.SlotSchedule) { s.BlockHours = 0 },
		"past midnight":    func(s *domain.SlotSchedule) { s.EndHour = 25 },
		"negative rate":    func(s *domain.SlotSchedule) { s.EveningRate = -1 },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			schedule := defaultSchedule()
			mutate(&schedule)
			_, err := GenerateSlots(schedule)
			assert.ErrorIs(t, err, ErrInvalidSchedule)
		})
	}
}

func TestCatalog_FindByLabel(t *testing.T) {
	c, err := New(defaultSchedule())
	require.NoError(t, err)

	slot, ok := c.FindByLabel("21:00 - 22:00")
	require.True(t, ok)
	assert.Equal(t, int64(1500), slot.Price)

	_, ok = c.FindByLabel("18:00 - 22:00")
	assert.False(t, ok)

	assert.Equal(t, []string{"09:00 - 13:00", "13:00 - 17:00", "17:00 - 21:00", "21:00 - 22:00"}, c.Labels())

	slots := c.Slots()
	slots[0].Price = 0
	again, _ := c.FindByLabel("09:00 - 13:00")
	assert.Equal(t, int64(1000), again.Price)
}
