package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowInput_ToDomainWindow(t *testing.T) {
	input := WindowInput{
		StartDate: "2025-10-01",
		EndDate:   "2025-10-15",
		StartTime: "09:00",
		EndTime:   "21:00",
	}

	w, err := input.ToDomainWindow()
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), w.StartDate)
	assert.Equal(t, time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), w.EndDate)
	assert.Equal(t, "09:00", w.StartTime.String())
	assert.Equal(t, "21:00", w.EndTime.String())
}

func TestWindowInput_Validation(t *testing.T) {
	cases := []struct {
		name  string
		input WindowInput
	}{
		{"bad start date", WindowInput{StartDate: "01.10.2025", EndDate: "2025-10-15", StartTime: "09:00", EndTime: "21:00"}},
		{"bad end date", WindowInput{StartDate: "2025-10-01", EndDate: "not-a-date", StartTime: "09:00", EndTime: "21:00"}},
		{"end before start date", WindowInput{StartDate: "2025-10-15", EndDate: "2025-10-01", StartTime: "09:00", EndTime: "21:00"}},
		{"bad start time", WindowInput{StartDate: "2025-10-01", EndDate: "2025-10-15", StartTime: "9am", EndTime: "21:00"}},
		{"bad end time", WindowInput{StartDate: "2025-10-01", EndDate: "2025-10-15", StartTime: "09:00", EndTime: "25:00"}},
		{"equal times", WindowInput{StartDate: "2025-10-01", EndDate: "2025-10-15", StartTime: "09:00", EndTime: "09:00"}},
		{"inverted times", WindowInput{StartDate: "2025-10-01", EndDate: "2025-10-15", StartTime: "21:00", EndTime: "09:00"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.input.ToDomainWindow()
			assert.ErrorIs(t, err, ErrInvalidWindow)
		})
	}
}
