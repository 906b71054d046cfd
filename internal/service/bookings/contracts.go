package bookings

import (
	"context"

	"github.com/yagera/bazaar-mtuci/internal/domain"
	"github.com/yagera/bazaar-mtuci/internal/integrations/itemservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByRenterID(ctx context.Context, renterID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetActiveByItemID(ctx context.Context, itemID int64) ([]*domain.Booking, error)
}

// ItemServiceClient интерфейс клиента для ItemService
type ItemServiceClient interface {
	GetItem(ctx context.Context, itemID int64) (*itemservice.Item, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
