package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/yagera/bazaar-mtuci/internal/domain"
	itemClient "github.com/yagera/bazaar-mtuci/internal/integrations/itemservice"
	"github.com/yagera/bazaar-mtuci/internal/service/availability/models"
)

// Service сервис для работы с календарём доступности объявлений
type Service struct {
	availRepo  AvailabilityRepository
	itemClient ItemServiceClient
	txManager  TransactionManager
	logger     Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(
	availRepo AvailabilityRepository,
	itemClient ItemServiceClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		availRepo:  availRepo,
		itemClient: itemClient,
		txManager:  txManager,
		logger:     logger,
	}
}

// List получает все окна доступности объявления
// Публичный метод - доступен всем
func (s *Service) List(ctx context.Context, itemID int64) (*models.WindowListResponse, error) {
	s.logger.Info("List: fetching availability windows for item=%d", itemID)

	// Убеждаемся, что объявление существует
	if _, err := s.itemClient.GetItem(ctx, itemID); err != nil {
		if errors.Is(err, itemClient.ErrItemNotFound) {
			s.logger.Warn("List: item id=%d not found", itemID)
			return nil, ErrItemNotFound
		}
		s.logger.Error("List: failed to get item id=%d: %v", itemID, err)
		return nil, fmt.Errorf("%w: List - failed to get item: %v", ErrInternal, err)
	}

	windows, err := s.availRepo.GetByItemID(ctx, itemID)
	if err != nil {
		s.logger.Error("List: repository error for item=%d: %v", itemID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d windows for item=%d", len(windows), itemID)
	return models.FromDomainWindowList(windows), nil
}

// Replace целиком заменяет окна доступности объявления
// Доступно только владельцу объявления. Пустой список окон закрывает
// календарь: без окон вещь забронировать нельзя
func (s *Service) Replace(ctx context.Context, req *models.SetAvailabilityRequest) (*models.WindowListResponse, error) {
	s.logger.Info("Replace: replacing availability windows for item=%d by user=%d, windows=%d",
		req.ItemID, req.UserID, len(req.Windows))

	// 1. Получаем объявление для проверки прав доступа
	item, err := s.itemClient.GetItem(ctx, req.ItemID)
	if err != nil {
		if errors.Is(err, itemClient.ErrItemNotFound) {
			s.logger.Warn("Replace: item id=%d not found", req.ItemID)
			return nil, ErrItemNotFound
		}
		s.logger.Error("Replace: failed to get item id=%d: %v", req.ItemID, err)
		return nil, fmt.Errorf("%w: Replace - failed to get item: %v", ErrInternal, err)
	}

	// 2. Проверяем права доступа (только владелец)
	if item.OwnerID != req.UserID {
		s.logger.Warn("Replace: user=%d is not the owner of item=%d", req.UserID, req.ItemID)
		return nil, ErrAccessDenied
	}

	// 3. Парсим и валидируем окна
	windows := make([]*domain.AvailabilityWindow, 0, len(req.Windows))
	for i, input := range req.Windows {
		window, err := input.ToDomainWindow()
		if err != nil {
			s.logger.Warn("Replace: invalid window #%d for item=%d: %v", i, req.ItemID, err)
			return nil, fmt.Errorf("%w: window #%d: %v", ErrInvalidInput, i, err)
		}
		windows = append(windows, window)
	}

	// 4. Заменяем окна в транзакции, чтобы не потерять старые при сбое
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.availRepo.ReplaceForItem(txCtx, req.ItemID, windows)
	})
	if err != nil {
		s.logger.Error("Replace: repository error for item=%d: %v", req.ItemID, err)
		return nil, fmt.Errorf("%w: Replace - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Replace: successfully replaced windows for item=%d", req.ItemID)

	// 5. Возвращаем актуальный список с присвоенными ID
	updated, err := s.availRepo.GetByItemID(ctx, req.ItemID)
	if err != nil {
		s.logger.Error("Replace: failed to reread windows for item=%d: %v", req.ItemID, err)
		return nil, fmt.Errorf("%w: Replace - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainWindowList(updated), nil
}
