package availability

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/yagera/bazaar-mtuci/internal/domain"
	"github.com/yagera/bazaar-mtuci/pkg/dbmetrics"
	"github.com/yagera/bazaar-mtuci/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

var windowColumns = []string{
	"id",
	"item_id",
	"start_date",
	"end_date",
	"start_time",
	"end_time",
}

// Repository репозиторий окон доступности
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория окон доступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByItemID получает все окна доступности вещи
func (r *Repository) GetByItemID(ctx context.Context, itemID int64) ([]*domain.AvailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(windowColumns...).
		From("availability_windows").
		Where(squirrel.Eq{"item_id": itemID}).
		OrderBy("start_date ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByItemID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByItemID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanWindows(rows)
}

// GetOverlappingDates получает окна вещи, пересекающиеся с диапазоном дат
// [startDate, endDate] (обе границы включительно).
// Окно подходит, если window.start_date <= endDate И window.end_date >= startDate
func (r *Repository) GetOverlappingDates(ctx context.Context, itemID int64, startDate, endDate time.Time) ([]*domain.AvailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(windowColumns...).
		From("availability_windows").
		Where(squirrel.Eq{"item_id": itemID}).
		Where(squirrel.LtOrEq{"start_date": endDate}).
		Where(squirrel.GtOrEq{"end_date": startDate}).
		OrderBy("start_date ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlappingDates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlappingDates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanWindows(rows)
}

// ReplaceForItem целиком заменяет окна доступности вещи:
// удаляет старые и вставляет новые одним батчем.
// Вызывается внутри транзакции (executor приходит из контекста),
// чтобы не оставить вещь без окон при сбое между delete и insert
func (r *Repository) ReplaceForItem(ctx context.Context, itemID int64, windows []*domain.AvailabilityWindow) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("availability_windows").
		Where(squirrel.Eq{"item_id": itemID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceForItem - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceForItem - execute delete: %v", ErrExecQuery, err)
	}

	if len(windows) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("availability_windows").
		Columns("item_id", "start_date", "end_date", "start_time", "end_time")

	for _, w := range windows {
		insertBuilder = insertBuilder.Values(itemID, w.StartDate, w.EndDate, w.StartTime, w.EndTime)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceForItem - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceForItem - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// scanWindows сканирует результаты запроса в слайс окон
func (r *Repository) scanWindows(rows *sql.Rows) ([]*domain.AvailabilityWindow, error) {
	windows := make([]*domain.AvailabilityWindow, 0)

	for rows.Next() {
		var w domain.AvailabilityWindow

		err := rows.Scan(
			&w.ID,
			&w.ItemID,
			&w.StartDate,
			&w.EndDate,
			&w.StartTime,
			&w.EndTime,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanWindows - scan row: %v", ErrScanRow, err)
		}

		windows = append(windows, &w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanWindows - rows error: %v", ErrScanRow, err)
	}

	return windows, nil
}
