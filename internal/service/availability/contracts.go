package availability

import (
	"context"

	"github.com/yagera/bazaar-mtuci/internal/domain"
	"github.com/yagera/bazaar-mtuci/internal/integrations/itemservice"
)

// AvailabilityRepository интерфейс репозитория окон доступности
type AvailabilityRepository interface {
	GetByItemID(ctx context.Context, itemID int64) ([]*domain.AvailabilityWindow, error)
	ReplaceForItem(ctx context.Context, itemID int64, windows []*domain.AvailabilityWindow) error
}

// ItemServiceClient интерфейс клиента для ItemService
type ItemServiceClient interface {
	GetItem(ctx context.Context, itemID int64) (*itemservice.Item, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
