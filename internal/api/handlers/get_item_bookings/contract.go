package get_item_bookings

import (
	"context"

	"github.com/yagera/bazaar-mtuci/internal/service/bookings/models"
)

type BookingService interface {
	GetItemBookings(ctx context.Context, itemID int64) (*models.ItemBookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
