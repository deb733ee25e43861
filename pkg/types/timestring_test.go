package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "morning", input: "09:00", want: "09:00"},
		{name: "trims spaces", input: " 13:30 ", want: "13:30"},
		{name: "end of day", input: "24:00", want: "24:00"},
		{name: "no leading zero", input: "9:00", wantErr: true},
		{name: "bad minutes", input: "10:60", wantErr: true},
		{name: "past end of day", input: "24:30", wantErr: true},
		{name: "garbage", input: "ab:cd", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	start := TimeString("21:00")

	end, err := start.AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("22:00"), end)

	_, err = start.AddMinutes(240)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("13:00"))
	assert.False(t, TimeString("13:00").IsBefore("13:00"))
	assert.True(t, TimeString("18:00").IsAfter("17:59"))
	assert.Equal(t, 18, TimeString("18:45").Hour())
	assert.Equal(t, -1, TimeString("bad").Hour())
	assert.True(t, TimeString("").IsZero())
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 1, 2, 7, 5, 0, 0, time.UTC))
	assert.Equal(t, "07:05", ts.String())
}
