package set_item_availability

import (
	"context"

	"github.com/yagera/bazaar-mtuci/internal/service/availability/models"
)

type AvailabilityService interface {
	Replace(ctx context.Context, req *models.SetAvailabilityRequest) (*models.WindowListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
