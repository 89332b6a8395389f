package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/yaksha-ameet-khemani/e-mall-pro-connect/models"
	"go.uber.org/zap"
)

const (
	productKeyPrefix = "product:detail:"
	listKeyPrefix    = "products:all:v"
	versionKey       = "products:version"
)

// ProductCache is a Redis read-through cache for single products and the full
// product list. The list key embeds a version counter so one INCR invalidates it.
type ProductCache struct {
	redis  *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewProductCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *ProductCache {
	return &ProductCache{redis: client, ttl: ttl, logger: logger}
}

// NewRedisClient parses redisURL and verifies the connection.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func (pc *ProductCache) GetProduct(ctx context.Context, id string) (*models.Product, bool) {
	var product models.Product
	if !pc.get(ctx, productKeyPrefix+id, &product) {
		return nil, false
	}
	return &product, true
}

func (pc *ProductCache) SetProduct(ctx context.Context, product *models.Product) {
	pc.set(ctx, productKeyPrefix+product.ID.Hex(), product)
}

func (pc *ProductCache) GetProductList(ctx context.Context) ([]models.Product, bool) {
	key, ok := pc.listKey(ctx)
	if !ok {
		return nil, false
	}
	var products []models.Product
	if !pc.get(ctx, key, &products) {
		return nil, false
	}
	return products, true
}

func (pc *ProductCache) SetProductList(ctx context.Context, products []models.Product) {
	if key, ok := pc.listKey(ctx); ok {
		pc.set(ctx, key, products)
	}
}

// InvalidateProduct drops the product entry and bumps the list version.
func (pc *ProductCache) InvalidateProduct(ctx context.Context, id string) {
	if err := pc.redis.Del(ctx, productKeyPrefix+id).Err(); err != nil {
		pc.logger.Warn("Failed to delete cached product", zap.String("product_id", id), zap.Error(err))
	}
	pc.InvalidateList(ctx)
}

func (pc *ProductCache) InvalidateList(ctx context.Context) {
	if err := pc.redis.Incr(ctx, versionKey).Err(); err != nil {
		pc.logger.Error("Failed to invalidate product list cache", zap.Error(err))
	}
}

func (pc *ProductCache) listKey(ctx context.Context) (string, bool) {
	version, err := pc.redis.Get(ctx, versionKey).Int64()
	if errors.Is(err, redis.Nil) {
		version = 0
	} else if err != nil {
		return "", false
	}
	return fmt.Sprintf("%s%d", listKeyPrefix, version), true
}

func (pc *ProductCache) get(ctx context.Context, key string, dst any) bool {
	data, err := pc.redis.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			pc.logger.Debug("Cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		pc.logger.Warn("Failed to unmarshal cached value", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (pc *ProductCache) set(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		pc.logger.Warn("Failed to marshal value for cache", zap.String("key", key), zap.Error(err))
		return
	}
	if err := pc.redis.Set(ctx, key, data, pc.ttl).Err(); err != nil {
		pc.logger.Debug("Failed to write cache", zap.String("key", key), zap.Error(err))
	}
}
