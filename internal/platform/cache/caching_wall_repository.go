// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"walloffame_backend/internal/feature/wins/domain/entity"
	"walloffame_backend/internal/feature/wins/usecase"
)

// CachingWallRepository decorates a WinRepository with Redis caching of the
// public wall listing. It implements the decorator pattern, transparently
// adding caching without modifying the underlying repository. Mutations pass
// through and invalidate the cached listing.
type CachingWallRepository struct {
	inner     usecase.WinRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// CachingWallRepositoryがWinRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.WinRepository = (*CachingWallRepository)(nil)

// NewCachingWallRepository decorates a WinRepository with Redis caching.
// If ttl is 0, it defaults to 1 minute. If namespace is empty, it uses "wall".
// A nil Redis client disables caching entirely.
func NewCachingWallRepository(rdb *redis.Client, ttl time.Duration, inner usecase.WinRepository, namespace string) *CachingWallRepository {
	if ttl <= 0 {
		ttl = time.Minute
	}
	if namespace == "" {
		namespace = "wall"
	}
	return &CachingWallRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Create inserts a win and invalidates the cached wall listing.
func (c *CachingWallRepository) Create(ctx context.Context, win *entity.Win) error {
	if err := c.inner.Create(ctx, win); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// FindAll retrieves the public wall, checking cache first then falling back
// to the database.
func (c *CachingWallRepository) FindAll(ctx context.Context) ([]entity.Win, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.FindAll(ctx)
	}

	key := c.cacheKey()

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Win
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// FindByOwner is not cached; per-owner listings are low-traffic.
func (c *CachingWallRepository) FindByOwner(ctx context.Context, ownerID uint) ([]entity.Win, error) {
	return c.inner.FindByOwner(ctx, ownerID)
}

// FindByID is not cached.
func (c *CachingWallRepository) FindByID(ctx context.Context, id uint) (*entity.Win, error) {
	return c.inner.FindByID(ctx, id)
}

// Update saves a win and invalidates the cached wall listing.
func (c *CachingWallRepository) Update(ctx context.Context, win *entity.Win) error {
	if err := c.inner.Update(ctx, win); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// Delete removes a win and invalidates the cached wall listing.
func (c *CachingWallRepository) Delete(ctx context.Context, id uint) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// cacheKey generates the cache key for the public wall listing.
func (c *CachingWallRepository) cacheKey() string {
	return c.namespace + ":all"
}

// invalidate removes the cached wall listing. Best effort: cache deletion
// failures never fail the mutation.
func (c *CachingWallRepository) invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, c.cacheKey()).Err()
}
