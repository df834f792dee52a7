package get_slot_options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WizardService/pkg/types"
)

func TestBuildStartTimes(t *testing.T) {
	options := buildStartTimes()

	// 08:00..18:00 с шагом полчаса, границы включены
	require.Len(t, options, 21)
	assert.Equal(t, "08:00", options[0].String())
	assert.Equal(t, "08:30", options[1].String())
	assert.Equal(t, "18:00", options[20].String())
}

func TestBuildEndTimes(t *testing.T) {
	tests := []struct {
		name        string
		start       string
		minDuration int
		first       string
		last        string
		count       int
	}{
		{
			name:        "morning start with three hour estimate",
			start:       "10:00",
			minDuration: 180,
			first:       "13:00",
			last:        "20:00",
			count:       15,
		},
		{
			name:        "late start leaves single option",
			start:       "18:00",
			minDuration: 120,
			first:       "20:00",
			last:        "20:00",
			count:       1,
		},
		{
			name:        "no estimate starts at next half-hour mark",
			start:       "19:30",
			minDuration: 0,
			first:       "20:00",
			last:        "20:00",
			count:       1,
		},
		{
			name:        "no estimate never offers zero-length window",
			start:       "10:00",
			minDuration: 0,
			first:       "10:30",
			last:        "20:00",
			count:       20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			options, err := buildEndTimes(types.TimeString(tt.start), tt.minDuration)
			require.NoError(t, err)
			require.Len(t, options, tt.count)
			assert.Equal(t, tt.first, options[0].String())
			assert.Equal(t, tt.last, options[len(options)-1].String())
		})
	}
}

func TestBuildEndTimes_EmptyWhenWindowDoesNotFit(t *testing.T) {
	// После 19:30 двухчасовое окно уже не помещается до закрытия
	options, err := buildEndTimes("19:30", 120)
	require.NoError(t, err)
	assert.Empty(t, options)
}

func TestMinDurationMinutes(t *testing.T) {
	assert.Equal(t, 0, minDurationMinutes(0))
	assert.Equal(t, 120, minDurationMinutes(2))
	// Дробная оценка округляется вверх до целого часа
	assert.Equal(t, 180, minDurationMinutes(2.5))
}
