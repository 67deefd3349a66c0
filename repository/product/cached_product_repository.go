package product

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/muhammadheryan/kidswear/model"
	redisrepo "github.com/muhammadheryan/kidswear/repository/redis"
	"github.com/muhammadheryan/kidswear/utils/logger"
	"go.uber.org/zap"
)

const catalogGenerationKey = "catalog:generation"

type cachedList struct {
	Items []model.Product `json:"items"`
	Total int64           `json:"total"`
}

// cached keeps public catalog pages in Redis. Single-product reads always go
// to the store so order pricing never sees a stale price.
type cached struct {
	inner ProductRepository
	cache redisrepo.Repository
	ttl   time.Duration
}

func NewCachedProductRepository(inner ProductRepository, cache redisrepo.Repository, ttl time.Duration) ProductRepository {
	return &cached{inner: inner, cache: cache, ttl: ttl}
}

func (c *cached) GetByID(ctx context.Context, id string) (*model.Product, error) {
	return c.inner.GetByID(ctx, id)
}

func (c *cached) List(ctx context.Context, page, perPage int, activeOnly bool) ([]model.Product, int64, error) {
	if !activeOnly || c.ttl <= 0 {
		return c.inner.List(ctx, page, perPage, activeOnly)
	}

	generation, _ := c.cache.Get(ctx, catalogGenerationKey)
	key := fmt.Sprintf("catalog:list:%s:%d:%d", generation, page, perPage)

	if raw, err := c.cache.Get(ctx, key); err == nil {
		var hit cachedList
		if err := json.Unmarshal([]byte(raw), &hit); err == nil {
			return hit.Items, hit.Total, nil
		}
		// unreadable entry, evict it and refill from the store
		if err := c.cache.Delete(ctx, key); err != nil {
			logger.Warn("[CachedProductRepository] evict cache", zap.String("key", key), zap.Error(err))
		}
	}

	items, total, err := c.inner.List(ctx, page, perPage, activeOnly)
	if err != nil {
		return nil, 0, err
	}

	if b, err := json.Marshal(cachedList{Items: items, Total: total}); err == nil {
		if err := c.cache.SetWithTTL(ctx, key, string(b), c.ttl); err != nil {
			logger.Warn("[CachedProductRepository] set cache", zap.String("key", key), zap.Error(err))
		}
	}
	return items, total, nil
}

// Update bumps the catalog generation so every cached page is bypassed.
func (c *cached) Update(ctx context.Context, id string, patch *model.ProductPatch) error {
	if err := c.inner.Update(ctx, id, patch); err != nil {
		return err
	}
	if _, err := c.cache.Incr(ctx, catalogGenerationKey); err != nil {
		logger.Warn("[CachedProductRepository] bump generation", zap.Error(err))
	}
	return nil
}
