package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yagera/bazaar-mtuci/pkg/types"
)

func window(startDate, endDate string, startTime, endTime types.TimeString) *AvailabilityWindow {
	sd, _ := time.ParseInLocation(DateFormat, startDate, time.UTC)
	ed, _ := time.ParseInLocation(DateFormat, endDate, time.UTC)
	return &AvailabilityWindow{
		StartDate: sd,
		EndDate:   ed,
		StartTime: startTime,
		EndTime:   endTime,
	}
}

func TestCheckWindows_NoWindows(t *testing.T) {
	start := time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	issue := CheckWindows(nil, start, end)
	require.NotNil(t, issue)
	assert.Equal(t, "На выбранные даты нет доступного времени", issue.Message)
}

func TestCheckWindows_WithinSingleDay(t *testing.T) {
	windows := []*AvailabilityWindow{
		window("2025-10-15", "2025-10-20", "09:00", "21:00"),
	}
	start := time.Date(2025, 10, 16, 10, 0, 0, 0, time.UTC)
	end := time.Date(2025, 10, 16, 14, 0, 0, 0, time.UTC)

	assert.Nil(t, CheckWindows(windows, start, end))
}

func TestCheckWindows_StartsTooEarly(t *testing.T) {
	windows := []*AvailabilityWindow{
		window("2025-10-15", "2025-10-20", "09:00", "21:00"),
	}
	start := time.Date(2025, 10, 16, 8, 0, 0, 0, time.UTC)
	end := time.Date(2025, 10, 16, 14, 0, 0, 0, time.UTC)

	issue := CheckWindows(windows, start, end)
	require.NotNil(t, issue)
	assert.Equal(t, types.TimeString("09:00"), issue.Bound)
	assert.Equal(t, "Время начала должно быть не раньше 09:00", issue.Message)
}

func TestCheckWindows_EndsTooLate(t *testing.T) {
	windows := []*AvailabilityWindow{
		window("2025-10-15", "2025-10-20", "09:00", "21:00"),
	}
	start := time.Date(2025, 10, 16, 10, 0, 0, 0, time.UTC)
	end := time.Date(2025, 10, 16, 22, 0, 0, 0, time.UTC)

	issue := CheckWindows(windows, start, end)
	require.NotNil(t, issue)
	assert.Equal(t, types.TimeString("21:00"), issue.Bound)
	assert.Equal(t, "Время окончания должно быть не позже 21:00", issue.Message)
}

func TestCheckWindows_UncoveredDateInsideRange(t *testing.T) {
	// Окно покрывает только первый день аренды
	windows := []*AvailabilityWindow{
		window("2025-10-16", "2025-10-16", "09:00", "21:00"),
	}
	start := time.Date(2025, 10, 16, 10, 0, 0, 0, time.UTC)
	end := time.Date(2025, 10, 17, 14, 0, 0, 0, time.UTC)

	issue := CheckWindows(windows, start, end)
	require.NotNil(t, issue)
	require.NotNil(t, issue.Date)
	assert.Equal(t, time.Date(2025, 10, 17, 0, 0, 0, 0, time.UTC), *issue.Date)
	assert.Equal(t, "На дату 17.10.2025 нет доступного времени", issue.Message)
}

func TestCheckWindows_MultiDayIgnoresNightHours(t *testing.T) {
	// Многодневная аренда с ночёвкой: границы времени проверяются
	// только на первом и последнем дне
	windows := []*AvailabilityWindow{
		window("2025-10-15", "2025-10-20", "09:00", "18:00"),
	}
	start := time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)
	end := time.Date(2025, 10, 17, 17, 0, 0, 0, time.UTC)

	assert.Nil(t, CheckWindows(windows, start, end))
}

func TestCheckWindows_SecondWindowCoversGap(t *testing.T) {
	windows := []*AvailabilityWindow{
		window("2025-10-15", "2025-10-16", "09:00", "21:00"),
		window("2025-10-17", "2025-10-18", "08:00", "20:00"),
	}
	start := time.Date(2025, 10, 16, 10, 0, 0, 0, time.UTC)
	end := time.Date(2025, 10, 17, 19, 0, 0, 0, time.UTC)

	assert.Nil(t, CheckWindows(windows, start, end))
}

func TestAvailabilityWindow_CoversDate(t *testing.T) {
	w := window("2025-10-15", "2025-10-17", "09:00", "21:00")

	assert.True(t, w.CoversDate(time.Date(2025, 10, 15, 23, 0, 0, 0, time.UTC)))
	assert.True(t, w.CoversDate(time.Date(2025, 10, 17, 0, 0, 0, 0, time.UTC)))
	assert.False(t, w.CoversDate(time.Date(2025, 10, 14, 12, 0, 0, 0, time.UTC)))
	assert.False(t, w.CoversDate(time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC)))
}

func TestDateOnly(t *testing.T) {
	ts := time.Date(2025, 10, 15, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), DateOnly(ts))
}
