package itemservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с ItemService
// Читает объявления через Redis кэш: ошибки кэша не фатальны,
// при любой проблеме с Redis запрос уходит напрямую в ItemService
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *redis.Client // nil = кэш выключен
	cacheTTL   time.Duration
	log        Logger
}

// NewClient создает новый экземпляр клиента ItemService
func NewClient(baseURL string, timeout time.Duration, cache *redis.Client, cacheTTL time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		cache:    cache,
		cacheTTL: cacheTTL,
		log:      log,
	}
}

// GetItem получает объявление по ID
func (c *Client) GetItem(ctx context.Context, itemID int64) (*Item, error) {
	if item := c.fromCache(ctx, itemID); item != nil {
		return item, nil
	}

	item, err := c.fetchItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	c.toCache(ctx, item)
	return item, nil
}

// fetchItem запрашивает объявление напрямую у ItemService
func (c *Client) fetchItem(ctx context.Context, itemID int64) (*Item, error) {
	url := fmt.Sprintf("%s/internal/items/%d", c.baseURL, itemID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrItemNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var item Item
	if err := json.NewDecoder(resp.Body).Decode(&item); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &item, nil
}

// fromCache пытается прочитать объявление из Redis
// Возвращает nil при промахе или любой ошибке кэша
func (c *Client) fromCache(ctx context.Context, itemID int64) *Item {
	if c.cache == nil {
		return nil
	}

	raw, err := c.cache.Get(ctx, cacheKey(itemID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("itemservice: cache read failed for item id=%d: %v", itemID, err)
		}
		return nil
	}

	var item Item
	if err := json.Unmarshal(raw, &item); err != nil {
		c.log.Warn("itemservice: cache entry for item id=%d is corrupted: %v", itemID, err)
		return nil
	}

	return &item
}

// toCache сохраняет объявление в Redis, ошибки только логируются
func (c *Client) toCache(ctx context.Context, item *Item) {
	if c.cache == nil {
		return
	}

	raw, err := json.Marshal(item)
	if err != nil {
		return
	}

	if err := c.cache.Set(ctx, cacheKey(item.ID), raw, c.cacheTTL).Err(); err != nil {
		c.log.Warn("itemservice: cache write failed for item id=%d: %v", item.ID, err)
	}
}

func cacheKey(itemID int64) string {
	return fmt.Sprintf("itemservice:item:%d", itemID)
}
