package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/yagera/bazaar-mtuci/internal/domain"
	"github.com/yagera/bazaar-mtuci/pkg/types"
)

var (
	// ErrInvalidWindow возвращается при некорректном окне доступности
	ErrInvalidWindow = errors.New("invalid availability window")
)

// Request модели

// WindowInput одно окно доступности в запросе
type WindowInput struct {
	StartDate string `json:"startDate"` // "2025-10-01"
	EndDate   string `json:"endDate"`   // "2025-10-15"
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "21:00"
}

// SetAvailabilityRequest запрос на полную замену окон доступности объявления
type SetAvailabilityRequest struct {
	UserID  int64         `json:"userId"`
	ItemID  int64         `json:"itemId"`
	Windows []WindowInput `json:"windows"`
}

// Response модели

// WindowResponse ответ с данными окна доступности
type WindowResponse struct {
	ID        int64  `json:"id"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// WindowListResponse ответ со списком окон доступности
type WindowListResponse struct {
	Windows []WindowResponse `json:"windows"`
}

// Методы конвертации

// ToDomainWindow парсит и валидирует окно из запроса
func (w *WindowInput) ToDomainWindow() (*domain.AvailabilityWindow, error) {
	startDate, err := time.ParseInLocation(domain.DateFormat, w.StartDate, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startDate %q", ErrInvalidWindow, w.StartDate)
	}

	endDate, err := time.ParseInLocation(domain.DateFormat, w.EndDate, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid endDate %q", ErrInvalidWindow, w.EndDate)
	}

	if endDate.Before(startDate) {
		return nil, fmt.Errorf("%w: endDate must not be before startDate", ErrInvalidWindow)
	}

	startTime, err := types.NewTimeStringFromString(w.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startTime %q", ErrInvalidWindow, w.StartTime)
	}

	endTime, err := types.NewTimeStringFromString(w.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid endTime %q", ErrInvalidWindow, w.EndTime)
	}

	if !startTime.IsBefore(endTime) {
		return nil, fmt.Errorf("%w: startTime must be before endTime", ErrInvalidWindow)
	}

	return &domain.AvailabilityWindow{
		StartDate: startDate,
		EndDate:   endDate,
		StartTime: startTime,
		EndTime:   endTime,
	}, nil
}

// FromDomainWindow конвертирует domain модель в DTO
func FromDomainWindow(w *domain.AvailabilityWindow) *WindowResponse {
	if w == nil {
		return nil
	}

	return &WindowResponse{
		ID:        w.ID,
		StartDate: w.StartDate.Format(domain.DateFormat),
		EndDate:   w.EndDate.Format(domain.DateFormat),
		StartTime: w.StartTime.String(),
		EndTime:   w.EndTime.String(),
	}
}

// FromDomainWindowList конвертирует список domain моделей в DTO
func FromDomainWindowList(windows []*domain.AvailabilityWindow) *WindowListResponse {
	resp := &WindowListResponse{
		Windows: make([]WindowResponse, 0, len(windows)),
	}

	for _, w := range windows {
		if windowResp := FromDomainWindow(w); windowResp != nil {
			resp.Windows = append(resp.Windows, *windowResp)
		}
	}

	return resp
}
