package domain

import (
	"fmt"
	"time"

	"github.com/yagera/bazaar-mtuci/pkg/types"
)

// AvailabilityWindow окно доступности вещи: диапазон дат (включительно)
// с ежедневными границами времени. У вещи может быть несколько окон,
// в том числе пересекающихся по датам
type AvailabilityWindow struct {
	ID        int64
	ItemID    int64
	StartDate time.Time // только дата, UTC
	EndDate   time.Time // только дата, UTC, >= StartDate
	StartTime types.TimeString
	EndTime   types.TimeString
}

// CoversDate возвращает true, если окно покрывает указанный календарный день
func (w *AvailabilityWindow) CoversDate(d time.Time) bool {
	day := DateOnly(d)
	return !day.Before(DateOnly(w.StartDate)) && !day.After(DateOnly(w.EndDate))
}

// AvailabilityIssue причина, по которой диапазон недоступен для бронирования
// Message готов для показа пользователю
type AvailabilityIssue struct {
	Date    *time.Time       // день без доступности, если нарушение привязано к дате
	Bound   types.TimeString // нарушенная граница времени, если применимо
	Message string
}

// CheckWindows проверяет, что диапазон [start, end) целиком попадает в окна
// доступности. Каждый календарный день диапазона должен покрываться хотя бы
// одним окном; границы времени суток проверяются только на первом и последнем
// дне (многодневная аренда с ночёвкой проходит через ночные часы)
//
// Возвращает nil, если диапазон доступен
func CheckWindows(windows []*AvailabilityWindow, start, end time.Time) *AvailabilityIssue {
	if len(windows) == 0 {
		return &AvailabilityIssue{Message: "На выбранные даты нет доступного времени"}
	}

	startDate := DateOnly(start)
	endDate := DateOnly(end)
	startTOD := types.NewTimeString(start)
	endTOD := types.NewTimeString(end)

	for day := startDate; !day.After(endDate); day = day.AddDate(0, 0, 1) {
		var covering *AvailabilityWindow
		for _, w := range windows {
			if w.CoversDate(day) {
				covering = w
				break
			}
		}

		if covering == nil {
			d := day
			return &AvailabilityIssue{
				Date:    &d,
				Message: fmt.Sprintf("На дату %s нет доступного времени", day.Format(DateFormatUser)),
			}
		}

		if day.Equal(startDate) && startTOD.IsBefore(covering.StartTime) {
			return &AvailabilityIssue{
				Bound:   covering.StartTime,
				Message: fmt.Sprintf("Время начала должно быть не раньше %s", covering.StartTime),
			}
		}

		if day.Equal(endDate) && endTOD.IsAfter(covering.EndTime) {
			return &AvailabilityIssue{
				Bound:   covering.EndTime,
				Message: fmt.Sprintf("Время окончания должно быть не позже %s", covering.EndTime),
			}
		}
	}

	return nil
}

// DateOnly обнуляет время, оставляя только календарную дату в UTC
func DateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
