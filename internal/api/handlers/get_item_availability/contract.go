package get_item_availability

import (
	"context"

	"github.com/yagera/bazaar-mtuci/internal/service/availability/models"
)

type AvailabilityService interface {
	List(ctx context.Context, itemID int64) (*models.WindowListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
