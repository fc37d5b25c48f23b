package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/dhp131/beaute-project-BE/models"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	productCachePrefix     = "product:detail:"
	productListCachePrefix = "products:v:"
	cacheVersionKey        = "products:version"
)

// DefaultTTL is how long cached catalog entries live before expiring on
// their own. Writes invalidate earlier by bumping the version key.
const DefaultTTL = 5 * time.Minute

// ProductCache is a versioned redis cache for the product catalog. Every
// list key embeds the current version; bumping the version on writes
// orphans all previously cached lists at once.
type ProductCache struct {
	redis  *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewProductCache(client *redis.Client, logger *zap.Logger) *ProductCache {
	return &ProductCache{redis: client, ttl: DefaultTTL, logger: logger}
}

// GetList returns the cached product list for key, if present.
func (c *ProductCache) GetList(ctx context.Context, key string) ([]models.Product, bool) {
	if c == nil || c.redis == nil {
		return nil, false
	}
	version, err := c.version(ctx)
	if err != nil || version == 0 {
		return nil, false
	}

	data, err := c.redis.Get(ctx, c.listKey(version, key)).Result()
	if err != nil {
		return nil, false
	}
	var products []models.Product
	if err := json.Unmarshal([]byte(data), &products); err != nil {
		c.logger.Warn("Failed to unmarshal cached product list", zap.Error(err))
		return nil, false
	}
	return products, true
}

// SetList caches a product list under key at the current version.
func (c *ProductCache) SetList(ctx context.Context, key string, products []models.Product) {
	if c == nil || c.redis == nil {
		return
	}
	version, err := c.version(ctx)
	if err != nil || version == 0 {
		return
	}
	data, err := json.Marshal(products)
	if err != nil {
		c.logger.Warn("Failed to marshal product list for cache", zap.Error(err))
		return
	}
	if err := c.redis.Set(ctx, c.listKey(version, key), data, c.ttl).Err(); err != nil {
		c.logger.Warn("Failed to cache product list", zap.Error(err))
	}
}

// GetProduct returns the cached product detail, if present.
func (c *ProductCache) GetProduct(ctx context.Context, id string) (*models.Product, bool) {
	if c == nil || c.redis == nil {
		return nil, false
	}
	data, err := c.redis.Get(ctx, productCachePrefix+id).Result()
	if err != nil {
		return nil, false
	}
	var product models.Product
	if err := json.Unmarshal([]byte(data), &product); err != nil {
		return nil, false
	}
	return &product, true
}

// SetProduct caches a product detail.
func (c *ProductCache) SetProduct(ctx context.Context, product *models.Product) {
	if c == nil || c.redis == nil || product == nil {
		return
	}
	data, err := json.Marshal(product)
	if err != nil {
		return
	}
	if err := c.redis.Set(ctx, productCachePrefix+product.ID.Hex(), data, c.ttl).Err(); err != nil {
		c.logger.Warn("Failed to cache product", zap.Error(err))
	}
}

// Invalidate bumps the list version and drops the detail entry for id (if
// any), orphaning every cached list.
func (c *ProductCache) Invalidate(ctx context.Context, id string) {
	if c == nil || c.redis == nil {
		return
	}
	if err := c.redis.Incr(ctx, cacheVersionKey).Err(); err != nil {
		c.logger.Warn("Failed to bump product cache version", zap.Error(err))
	}
	if id != "" {
		if err := c.redis.Del(ctx, productCachePrefix+id).Err(); err != nil {
			c.logger.Warn("Failed to drop cached product", zap.String("id", id), zap.Error(err))
		}
	}
}

func (c *ProductCache) version(ctx context.Context) (int64, error) {
	val, err := c.redis.Get(ctx, cacheVersionKey).Result()
	if err == redis.Nil {
		// First use: seed the version so list keys stay stable until
		// the next write.
		if err := c.redis.Set(ctx, cacheVersionKey, 1, 0).Err(); err != nil {
			return 0, err
		}
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(val, 10, 64)
}

func (c *ProductCache) listKey(version int64, key string) string {
	return fmt.Sprintf("%s%d:%s", productListCachePrefix, version, key)
}
