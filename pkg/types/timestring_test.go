package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid morning", "08:00", false},
		{"valid evening", "19:30", false},
		{"midnight", "00:00", false},
		{"no leading zero", "8:00", true},
		{"out of range hour", "24:00", true},
		{"out of range minute", "10:60", true},
		{"garbage", "abc", true},
		{"with seconds", "10:00:00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
		})
	}
}

func TestTimeString_Minutes(t *testing.T) {
	ts := TimeString("10:30")
	minutes, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 630, minutes)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("18:00")

	result, err := ts.AddMinutes(120)
	require.NoError(t, err)
	assert.Equal(t, "20:00", result.String())

	// Выход за пределы суток
	_, err = ts.AddMinutes(6 * 60)
	assert.Error(t, err)
}

func TestTimeString_Comparison(t *testing.T) {
	assert.True(t, TimeString("08:00").IsBefore("08:30"))
	assert.False(t, TimeString("08:30").IsBefore("08:30"))
	assert.True(t, TimeString("20:00").IsAfter("19:30"))
	assert.False(t, TimeString("bad").IsBefore("08:00"))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	// PostgreSQL TIME приходит с секундами
	require.NoError(t, ts.Scan("10:00:00"))
	assert.Equal(t, "10:00", ts.String())

	require.NoError(t, ts.Scan([]byte("18:30")))
	assert.Equal(t, "18:30", ts.String())

	require.NoError(t, ts.Scan(nil))
	assert.Empty(t, ts)
}
