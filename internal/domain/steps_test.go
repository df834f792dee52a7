package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func completedForm() *BookingFormState {
	form := NewBookingFormState()
	form.ServiceType = "STANDARD_CLEANING"
	form.NumRooms = 2
	form.NumBathrooms = 1
	form.AreaSqm = "60"
	form.TimeSlots = []TimeSlot{{
		Date:      time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
		EndTime:   "13:00",
	}}
	form.SetFreeformAddress(FreeformAddress{
		StreetAddress: "Strada Aviatorilor 15",
		City:          "București",
	}, "city-1", "area-1")
	return form
}

func TestCanAdvance(t *testing.T) {
	tests := []struct {
		name            string
		step            Step
		mutate          func(f *BookingFormState)
		isAuthenticated bool
		expected        bool
	}{
		{
			name:     "service step requires service type",
			step:     StepService,
			mutate:   func(f *BookingFormState) { f.ServiceType = "" },
			expected: false,
		},
		{
			name:     "service step passes with service type",
			step:     StepService,
			expected: true,
		},
		{
			name:     "details step rejects zero rooms",
			step:     StepDetails,
			mutate:   func(f *BookingFormState) { f.NumRooms = 0 },
			expected: false,
		},
		{
			name:     "details step passes with one room",
			step:     StepDetails,
			mutate:   func(f *BookingFormState) { f.NumRooms = 1 },
			expected: true,
		},
		{
			name:     "details step requires parsable area",
			step:     StepDetails,
			mutate:   func(f *BookingFormState) { f.AreaSqm = "  " },
			expected: false,
		},
		{
			name:     "schedule step requires at least one slot",
			step:     StepSchedule,
			mutate:   func(f *BookingFormState) { f.TimeSlots = nil },
			expected: false,
		},
		{
			name:     "schedule step passes with one slot",
			step:     StepSchedule,
			expected: true,
		},
		{
			name:     "address step requires street for freeform",
			step:     StepAddress,
			mutate:   func(f *BookingFormState) { f.Address.Freeform.StreetAddress = "" },
			expected: false,
		},
		{
			name:     "address step passes with saved address",
			step:     StepAddress,
			mutate:   func(f *BookingFormState) { f.SetSavedAddress("addr-1", "city-1", "area-1") },
			expected: true,
		},
		{
			name:     "provider step is optional",
			step:     StepProvider,
			expected: true,
		},
		{
			name:            "summary step requires authentication",
			step:            StepSummary,
			isAuthenticated: false,
			expected:        false,
		},
		{
			name:            "summary step passes when authenticated",
			step:            StepSummary,
			isAuthenticated: true,
			expected:        true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := completedForm()
			if tt.mutate != nil {
				tt.mutate(form)
			}
			assert.Equal(t, tt.expected, CanAdvance(tt.step, form, tt.isAuthenticated))
		})
	}
}

func TestStepIsValid(t *testing.T) {
	assert.True(t, StepService.IsValid())
	assert.True(t, StepSummary.IsValid())
	assert.False(t, Step(-1).IsValid())
	assert.False(t, Step(6).IsValid())
}
